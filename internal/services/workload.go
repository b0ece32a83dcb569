package services

import (
	"context"

	"github.com/Renal37/orderdesk/internal/models"
)

// StatsFor считает загрузку сотрудника сканированием снимка заказов.
// Принадлежность заказа определяется тем же AssigneeID, что и фильтр
// неназначенных заказов, поэтому каталог и агрегатор не могут разойтись
// в оценке одного и того же заказа.
func StatsFor(employeeID string, orders []models.Order) models.EmployeeSummary {
	summary := models.EmployeeSummary{EmployeeID: employeeID}

	for i := range orders {
		if orders[i].AssigneeID() != employeeID {
			continue
		}

		summary.TotalAssigned++

		if orders[i].Status == models.StatusCompleted {
			summary.Completed++
			continue
		}

		summary.Pending++

		if orders[i].InProgress() {
			summary.ActiveOrders++
		}
	}

	return summary
}

// EmployeeService отдаёт справочник сотрудников и их загрузку.
type EmployeeService struct {
	storage employeeStorage
}

type employeeStorage interface {
	FindEmployees(ctx context.Context) ([]models.Employee, error)

	FindEmployee(ctx context.Context, employeeID string) (*models.Employee, error)

	FindAllOrders(ctx context.Context) ([]models.Order, error)
}

func NewEmployeeService(storage employeeStorage) *EmployeeService {
	return &EmployeeService{storage: storage}
}

func (es *EmployeeService) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	return es.storage.FindEmployees(ctx)
}

// GetEmployeeSummary возвращает сводку загрузки: всего назначено,
// в ожидании, завершено, в работе.
func (es *EmployeeService) GetEmployeeSummary(ctx context.Context, employeeID string) (models.EmployeeSummary, error) {
	employee, err := es.storage.FindEmployee(ctx, employeeID)
	if err != nil {
		return models.EmployeeSummary{}, err
	}

	if employee == nil {
		return models.EmployeeSummary{}, ErrEmployeeNotFound
	}

	orders, err := es.storage.FindAllOrders(ctx)
	if err != nil {
		return models.EmployeeSummary{}, err
	}

	summary := StatsFor(employeeID, orders)
	summary.EmployeeName = employee.Name

	return summary, nil
}
