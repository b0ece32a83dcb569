package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Renal37/orderdesk/internal/database"
	"github.com/Renal37/orderdesk/internal/models"
)

// Ошибки проверки и применения назначения. Ошибки проверки устранимы
// исправлением ввода; ErrDuplicateJobNumber и ErrOrderAlreadyAssigned
// требуют перечитать снимок и повторить с новым номером.
var (
	ErrMissingEmployee      = errors.New("не указан сотрудник")
	ErrMissingJobNumber     = errors.New("не указан номер работы")
	ErrInvalidJobNumber     = errors.New("номер работы не соответствует формату")
	ErrDuplicateJobNumber   = errors.New("номер работы уже занят")
	ErrOrderAlreadyAssigned = errors.New("заказ уже назначен другим оператором")
	ErrEmployeeNotFound     = errors.New("сотрудник не найден")
)

// ValidatedAssignment — результат успешной проверки: заказ, нормализованный
// номер работы и сотрудник, готовые к атомарному применению.
type ValidatedAssignment struct {
	OrderID    string
	JobNumber  string
	EmployeeID string
}

// AssignmentService связывает заказ с сотрудником и номером работы.
type AssignmentService struct {
	storage assignmentStorage
	format  JobNumberFormat
}

type assignmentStorage interface {
	FindOrder(ctx context.Context, orderID string) (*models.Order, error)

	FindAllOrders(ctx context.Context) ([]models.Order, error)

	FindEmployee(ctx context.Context, employeeID string) (*models.Employee, error)

	FindJobNumbers(ctx context.Context) ([]string, error)

	ApplyAssignment(ctx context.Context, orderID, jobNumber, employeeID string) error
}

func NewAssignmentService(storage assignmentStorage, format JobNumberFormat) *AssignmentService {
	return &AssignmentService{storage: storage, format: format}
}

// SuggestJobNumber предлагает следующий свободный номер по текущему снимку.
// Предложение совещательное: номер не резервируется, при гонке запись
// отклонит хранилище и вызывающий возьмёт свежий номер.
func (as *AssignmentService) SuggestJobNumber(ctx context.Context) (string, error) {
	jobNumbers, err := as.storage.FindJobNumbers(ctx)
	if err != nil {
		return "", err
	}

	return as.format.Next(jobNumbers), nil
}

// ValidateAssignment выполняет локальные проверки запроса на назначение.
// Проверки идут по порядку и обрываются на первой ошибке: сотрудник,
// наличие номера, формат, занятость номера другим заказом. Заказ,
// которому номер уже принадлежит, коллизией с самим собой не считается.
func (as *AssignmentService) ValidateAssignment(order *models.Order, jobNumber, employeeID string, allOrders []models.Order) (ValidatedAssignment, error) {
	if strings.TrimSpace(employeeID) == "" {
		return ValidatedAssignment{}, ErrMissingEmployee
	}

	trimmed := strings.TrimSpace(jobNumber)
	if trimmed == "" {
		return ValidatedAssignment{}, ErrMissingJobNumber
	}

	if !as.format.Valid(trimmed) {
		return ValidatedAssignment{}, ErrInvalidJobNumber
	}

	normalized := as.format.Normalize(trimmed)

	for i := range allOrders {
		other := &allOrders[i]
		if other.ID == order.ID || other.JobNumber == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(*other.JobNumber), normalized) {
			return ValidatedAssignment{}, ErrDuplicateJobNumber
		}
	}

	return ValidatedAssignment{
		OrderID:    order.ID,
		JobNumber:  normalized,
		EmployeeID: strings.TrimSpace(employeeID),
	}, nil
}

// Assign проверяет запрос по свежему снимку и применяет назначение.
// Номер работы и сотрудник записываются одним запросом к хранилищу:
// либо оба поля фиксируются, либо ни одно. Локальная проверка занятости
// номера — только быстрый путь, решающей остаётся уникальность в хранилище.
func (as *AssignmentService) Assign(ctx context.Context, orderID, jobNumber, employeeID string) (*models.OrderView, error) {
	order, err := as.storage.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	validated, err := as.ValidateAssignment(order, jobNumber, employeeID, nil)
	if err != nil {
		return nil, err
	}

	employee, err := as.storage.FindEmployee(ctx, validated.EmployeeID)
	if err != nil {
		return nil, err
	}

	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	allOrders, err := as.storage.FindAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := as.ValidateAssignment(order, validated.JobNumber, validated.EmployeeID, allOrders); err != nil {
		return nil, err
	}

	if err := as.storage.ApplyAssignment(ctx, validated.OrderID, validated.JobNumber, validated.EmployeeID); err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicateJobNumber):
			return nil, ErrDuplicateJobNumber
		case errors.Is(err, database.ErrOrderAlreadyAssigned):
			return nil, ErrOrderAlreadyAssigned
		case errors.Is(err, database.ErrOrderNotFound):
			return nil, ErrOrderNotFound
		default:
			return nil, err
		}
	}

	assigned, err := as.storage.FindOrder(ctx, validated.OrderID)
	if err != nil {
		return nil, err
	}

	if assigned == nil {
		return nil, ErrOrderNotFound
	}

	view := ResolveView(*assigned, time.Now())

	return &view, nil
}
