package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Renal37/orderdesk/internal/models"
	"github.com/Renal37/orderdesk/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound = errors.New("заказ не найден")
	ErrEmptyOrder    = errors.New("в заказе нет ни одной позиции")
	ErrNoCustomer    = errors.New("не указан заказчик")
)

// Значения фильтра по диапазону дедлайнов, счёт дней включительный
// относительно текущей даты.
const (
	RangeWeek = "7days"
	Range30   = "30days"
	RangeAll  = "all"
)

// OrderDirectoryService — каталог заказов: приём новых заказов и
// производные выборки над полным набором. Все фильтры опираются на общий
// резолвер производных полей и общий AssigneeID, локально логика
// назначения и дедлайнов нигде не повторяется.
type OrderDirectoryService struct {
	storage orderStorage
}

type orderStorage interface {
	CreateOrder(ctx context.Context, order *models.Order) error

	FindOrder(ctx context.Context, orderID string) (*models.Order, error)

	FindAllOrders(ctx context.Context) ([]models.Order, error)
}

func NewOrderDirectoryService(storage orderStorage) *OrderDirectoryService {
	return &OrderDirectoryService{storage: storage}
}

// CreateOrder принимает заказ из формы: статус New, без номера работы и
// без сотрудника. Сумма заказа — производная от сумм позиций.
func (os *OrderDirectoryService) CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.OrderView, error) {
	if strings.TrimSpace(draft.CustomerName) == "" {
		return nil, ErrNoCustomer
	}

	if len(draft.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	start := time.Now()
	if draft.StartDate != nil && !draft.StartDate.IsZero() {
		start = draft.StartDate.Time
	}

	order := models.Order{
		ID:                    uuid.NewString(),
		PONumber:              strings.TrimSpace(draft.PONumber),
		CustomerName:          strings.TrimSpace(draft.CustomerName),
		StartDate:             utils.RFC3339Date{Time: start},
		EstimatedDeliveryDate: draft.EstimatedDeliveryDate,
		Status:                models.StatusNew,
		Priority:              models.NormalizePriority(draft.Priority),
		Notes:                 draft.Notes,
		TotalAmount:           decimal.Zero,
	}

	for _, item := range draft.Items {
		order.Items = append(order.Items, models.Item{
			Name:         item.Name,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			Rate:         item.Rate,
			Amount:       item.Amount,
			DeliveryDate: item.DeliveryDate,
			Priority:     models.NormalizePriority(item.Priority),
		})
		order.TotalAmount = order.TotalAmount.Add(item.Amount)
	}

	if err := os.storage.CreateOrder(ctx, &order); err != nil {
		return nil, err
	}

	view := ResolveView(order, time.Now())

	return &view, nil
}

func (os *OrderDirectoryService) GetOrder(ctx context.Context, orderID string) (*models.OrderView, error) {
	order, err := os.storage.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	view := ResolveView(*order, time.Now())

	return &view, nil
}

// GetOrders возвращает срез каталога под составной фильтр.
func (os *OrderDirectoryService) GetOrders(ctx context.Context, filter models.OrderFilter) ([]models.OrderView, error) {
	orders, err := os.storage.FindAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	return FilterOrders(orders, filter, time.Now()), nil
}

// GetOrdersSummary — сводка каталога: всего, назначено, не назначено.
func (os *OrderDirectoryService) GetOrdersSummary(ctx context.Context) (models.OrdersSummary, error) {
	orders, err := os.storage.FindAllOrders(ctx)
	if err != nil {
		return models.OrdersSummary{}, err
	}

	summary := models.OrdersSummary{Total: len(orders)}
	for i := range orders {
		if orders[i].Unassigned() {
			summary.NotMapped++
		} else {
			summary.Mapped++
		}
	}

	return summary, nil
}

// FilterOrders применяет фильтр к снимку заказов относительно момента now.
// Чистая функция: повторный вызов на свежем снимке не зависит от прошлых
// вызовов. Результат отсортирован для панели оператора: просроченные,
// затем высокий приоритет, затем ближайший дедлайн.
func FilterOrders(orders []models.Order, filter models.OrderFilter, now time.Time) []models.OrderView {
	today := startOfDay(now)

	result := make([]models.OrderView, 0, len(orders))

	for i := range orders {
		view := ResolveView(orders[i], now)

		if filter.Status != "" && view.Status != filter.Status {
			continue
		}

		if filter.Assigned != nil && *filter.Assigned == view.Unassigned() {
			continue
		}

		if filter.Employee != "" && view.AssigneeID() != filter.Employee {
			continue
		}

		if filter.Priority != "" && view.EffectivePriority != filter.Priority {
			continue
		}

		if filter.Overdue && !view.Overdue {
			continue
		}

		if filter.DueToday && !sameDay(view.EffectiveDeadline.Time, today) {
			continue
		}

		if !matchRange(view.EffectiveDeadline.Time, filter.Range, today) {
			continue
		}

		if !matchSearch(&view, filter.Search) {
			continue
		}

		result = append(result, view)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Overdue != result[j].Overdue {
			return result[i].Overdue
		}
		iHigh := result[i].EffectivePriority == models.PriorityHigh
		jHigh := result[j].EffectivePriority == models.PriorityHigh
		if iHigh != jHigh {
			return iHigh
		}
		return result[i].EffectiveDeadline.Time.Before(result[j].EffectiveDeadline.Time)
	})

	return result
}

// matchRange проверяет попадание дедлайна в окно 7/30 дней от текущей даты.
// Пустое значение и all пропускают всё.
func matchRange(deadline time.Time, rangeValue string, today time.Time) bool {
	var days int

	switch rangeValue {
	case "", RangeAll:
		return true
	case RangeWeek:
		days = 7
	case Range30:
		days = 30
	default:
		return true
	}

	if deadline.IsZero() {
		return false
	}

	limit := today.AddDate(0, 0, days+1)

	return !deadline.Before(today) && deadline.Before(limit)
}

// matchSearch — свободный текстовый поиск по номеру работы, номеру PO и
// имени заказчика.
func matchSearch(view *models.OrderView, search string) bool {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return true
	}

	if view.JobNumber != nil && strings.Contains(strings.ToLower(*view.JobNumber), query) {
		return true
	}

	if strings.Contains(strings.ToLower(view.PONumber), query) {
		return true
	}

	return strings.Contains(strings.ToLower(view.CustomerName), query)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
