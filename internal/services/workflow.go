package services

import (
	"context"
	"errors"
	"time"

	"github.com/Renal37/orderdesk/internal/models"
)

var (
	ErrInvalidTransition = errors.New("недопустимый переход статуса")
	ErrUnknownStatus     = errors.New("неизвестный статус заказа")
)

// stageRank задаёт порядок стадий производственного цикла.
// Completed — терминальная стадия, из неё переходов нет.
var stageRank = map[models.OrderStatus]int{
	models.StatusNew:           0,
	models.StatusVerified:      1,
	models.StatusManufacturing: 2,
	models.StatusQualityCheck:  3,
	models.StatusDocumentation: 4,
	models.StatusDispatch:      5,
	models.StatusCompleted:     6,
}

// ValidateTransition проверяет переход статуса. Разрешено любое движение
// строго вперёд по циклу, в том числе через несколько стадий сразу
// (New → Completed допустим). Движение назад и переход в ту же стадию
// отклоняются. Назначение сотрудника статус не меняет — это независимый
// атрибут заказа.
func ValidateTransition(current, next models.OrderStatus) error {
	currentRank, ok := stageRank[current]
	if !ok {
		return ErrUnknownStatus
	}

	nextRank, ok := stageRank[next]
	if !ok {
		return ErrUnknownStatus
	}

	if nextRank <= currentRank {
		return ErrInvalidTransition
	}

	return nil
}

// WorkflowService применяет переходы статуса к заказам.
type WorkflowService struct {
	storage workflowStorage
}

type workflowStorage interface {
	FindOrder(ctx context.Context, orderID string) (*models.Order, error)

	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus, note string) error
}

func NewWorkflowService(storage workflowStorage) *WorkflowService {
	return &WorkflowService{storage: storage}
}

// ChangeStatus проверяет и применяет переход. Каждый применённый переход
// записывается в историю статусов заказа.
func (ws *WorkflowService) ChangeStatus(ctx context.Context, orderID string, status models.OrderStatus, note string) (*models.OrderView, error) {
	order, err := ws.storage.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := ValidateTransition(order.Status, status); err != nil {
		return nil, err
	}

	if err := ws.storage.UpdateOrderStatus(ctx, orderID, status, note); err != nil {
		return nil, err
	}

	order.Status = status
	view := ResolveView(*order, time.Now())

	return &view, nil
}
