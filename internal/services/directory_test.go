package services

import (
	"context"
	"testing"
	"time"

	"github.com/Renal37/orderdesk/internal/models"
	"github.com/Renal37/orderdesk/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStorage struct {
	orders []models.Order
}

func (fs *fakeOrderStorage) CreateOrder(_ context.Context, order *models.Order) error {
	fs.orders = append(fs.orders, *order)
	return nil
}

func (fs *fakeOrderStorage) FindOrder(_ context.Context, orderID string) (*models.Order, error) {
	for i := range fs.orders {
		if fs.orders[i].ID == orderID {
			copied := fs.orders[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (fs *fakeOrderStorage) FindAllOrders(_ context.Context) ([]models.Order, error) {
	return append([]models.Order(nil), fs.orders...), nil
}

func TestCreateOrder(t *testing.T) {
	storage := &fakeOrderStorage{}
	service := NewOrderDirectoryService(storage)

	draft := models.OrderDraft{
		PONumber:     " PO-77 ",
		CustomerName: " ООО Ромашка ",
		Priority:     "high",
		Items: []models.ItemDraft{
			{Name: "Корпус", Quantity: 2, Rate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(200)},
			{Name: "Крышка", Quantity: 1, Rate: decimal.NewFromFloat(50.5), Amount: decimal.NewFromFloat(50.5), Priority: "HIGH"},
		},
	}

	view, err := service.CreateOrder(context.Background(), draft)
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "PO-77", view.PONumber)
	assert.Equal(t, "ООО Ромашка", view.CustomerName)
	assert.Equal(t, models.StatusNew, view.Status)
	assert.Equal(t, models.PriorityHigh, view.Priority)
	assert.Nil(t, view.JobNumber)
	assert.True(t, view.Unassigned())
	assert.True(t, decimal.NewFromFloat(250.5).Equal(view.TotalAmount))
	require.Len(t, storage.orders, 1)
}

func TestCreateOrderValidation(t *testing.T) {
	service := NewOrderDirectoryService(&fakeOrderStorage{})

	_, err := service.CreateOrder(context.Background(), models.OrderDraft{
		Items: []models.ItemDraft{{Name: "Корпус"}},
	})
	assert.ErrorIs(t, err, ErrNoCustomer)

	_, err = service.CreateOrder(context.Background(), models.OrderDraft{
		CustomerName: "ООО Ромашка",
	})
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func directorySnapshot() []models.Order {
	return []models.Order{
		{
			ID:           "overdue",
			CustomerName: "Завод Прогресс",
			PONumber:     "PO-1",
			JobNumber:    strPtr("EJB-00001"),
			AssignedTo:   strPtr("e1"),
			Status:       models.StatusManufacturing,
			StartDate:    utils.RFC3339Date{Time: date("2025-02-01")},
			Items:        []models.Item{{DeliveryDate: datePtr("2025-02-20")}},
		},
		{
			ID:           "due-today",
			CustomerName: "ООО Ромашка",
			PONumber:     "PO-2",
			Status:       models.StatusNew,
			StartDate:    utils.RFC3339Date{Time: date("2025-02-20")},
			Items:        []models.Item{{DeliveryDate: datePtr("2025-03-01")}},
		},
		{
			ID:               "next-week",
			CustomerName:     "ИП Петров",
			PONumber:         "PO-3",
			JobNumber:        strPtr("EJB-00002"),
			AccountsEmployee: strPtr("e2"),
			Status:           models.StatusVerified,
			Priority:         models.PriorityHigh,
			StartDate:        utils.RFC3339Date{Time: date("2025-02-20")},
			Items:            []models.Item{{DeliveryDate: datePtr("2025-03-05")}},
		},
		{
			ID:           "next-month",
			CustomerName: "Завод Прогресс",
			PONumber:     "PO-4",
			Status:       models.StatusNew,
			StartDate:    utils.RFC3339Date{Time: date("2025-02-20")},
			Items:        []models.Item{{DeliveryDate: datePtr("2025-03-25")}},
		},
		{
			ID:           "far-future",
			CustomerName: "ООО Ромашка",
			PONumber:     "PO-5",
			Status:       models.StatusNew,
			StartDate:    utils.RFC3339Date{Time: date("2025-02-20")},
			Items:        []models.Item{{DeliveryDate: datePtr("2025-06-01")}},
		},
		{
			ID:                      "done",
			CustomerName:            "ИП Петров",
			PONumber:                "PO-6",
			JobNumber:               strPtr("EJB-00003"),
			AssignedAccountEmployee: strPtr("e1"),
			Status:                  models.StatusCompleted,
			StartDate:               utils.RFC3339Date{Time: date("2025-01-01")},
			Items:                   []models.Item{{DeliveryDate: datePtr("2025-01-20")}},
		},
	}
}

func orderIDs(views []models.OrderView) []string {
	ids := make([]string, 0, len(views))
	for i := range views {
		ids = append(ids, views[i].ID)
	}
	return ids
}

func TestFilterOrders(t *testing.T) {
	now := date("2025-03-01")

	testCases := []struct {
		testName string
		filter   models.OrderFilter
		expected []string
	}{
		{
			testName: "Should return everything sorted overdue first, then priority, then deadline",
			filter:   models.OrderFilter{},
			expected: []string{"overdue", "next-week", "done", "due-today", "next-month", "far-future"},
		},
		{
			testName: "Should filter by status",
			filter:   models.OrderFilter{Status: models.StatusNew},
			expected: []string{"due-today", "next-month", "far-future"},
		},
		{
			testName: "Should filter by effective priority",
			filter:   models.OrderFilter{Priority: models.PriorityHigh},
			expected: []string{"next-week"},
		},
		{
			testName: "Should keep only unassigned orders",
			filter:   models.OrderFilter{Assigned: boolPtr(false)},
			expected: []string{"due-today", "next-month", "far-future"},
		},
		{
			testName: "Should keep only assigned orders across all legacy assignee fields",
			filter:   models.OrderFilter{Assigned: boolPtr(true)},
			expected: []string{"overdue", "next-week", "done"},
		},
		{
			testName: "Should filter by the assigned employee",
			filter:   models.OrderFilter{Employee: "e1"},
			expected: []string{"overdue", "done"},
		},
		{
			testName: "Should keep only overdue orders",
			filter:   models.OrderFilter{Overdue: true},
			expected: []string{"overdue"},
		},
		{
			testName: "Should keep only orders due today",
			filter:   models.OrderFilter{DueToday: true},
			expected: []string{"due-today"},
		},
		{
			testName: "Should window deadlines to the next seven days",
			filter:   models.OrderFilter{Range: RangeWeek},
			expected: []string{"next-week", "due-today"},
		},
		{
			testName: "Should window deadlines to the next thirty days",
			filter:   models.OrderFilter{Range: Range30},
			expected: []string{"next-week", "due-today", "next-month"},
		},
		{
			testName: "Should treat the all range as no window",
			filter:   models.OrderFilter{Range: RangeAll},
			expected: []string{"overdue", "next-week", "done", "due-today", "next-month", "far-future"},
		},
		{
			testName: "Should search by job number ignoring case",
			filter:   models.OrderFilter{Search: "ejb-00002"},
			expected: []string{"next-week"},
		},
		{
			testName: "Should search by PO number",
			filter:   models.OrderFilter{Search: "po-4"},
			expected: []string{"next-month"},
		},
		{
			testName: "Should search by customer name",
			filter:   models.OrderFilter{Search: "прогресс"},
			expected: []string{"overdue", "next-month"},
		},
		{
			testName: "Should combine filters",
			filter:   models.OrderFilter{Status: models.StatusNew, Range: Range30, Search: "ромашка"},
			expected: []string{"due-today"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.expected, orderIDs(FilterOrders(directorySnapshot(), tc.filter, now)))
		})
	}
}

func boolPtr(value bool) *bool {
	return &value
}

func TestGetOrdersSummary(t *testing.T) {
	storage := &fakeOrderStorage{orders: directorySnapshot()}
	service := NewOrderDirectoryService(storage)

	summary, err := service.GetOrdersSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.OrdersSummary{Total: 6, Mapped: 3, NotMapped: 3}, summary)
}

func TestGetOrder(t *testing.T) {
	storage := &fakeOrderStorage{orders: directorySnapshot()}
	service := NewOrderDirectoryService(storage)

	view, err := service.GetOrder(context.Background(), "next-week")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, view.EffectivePriority)
	assert.Equal(t, date("2025-03-05"), view.EffectiveDeadline.Time)

	_, err = service.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

// Сценарий одного дня смены: два занятых номера, оператор берёт
// предложенный третий, назначает заказ и видит его в своей загрузке.
func TestAssignmentRoundTrip(t *testing.T) {
	orders := map[string]*models.Order{
		"o1": {ID: "o1", CustomerName: "ООО Ромашка", Status: models.StatusNew, StartDate: utils.RFC3339Date{Time: date("2025-02-01")}},
		"o2": {ID: "o2", JobNumber: strPtr("EJB-00001"), AssignedTo: strPtr("e2"), Status: models.StatusNew},
		"o3": {ID: "o3", JobNumber: strPtr("EJB-00002"), AccountsEmployee: strPtr("e2"), Status: models.StatusNew},
	}
	storage := &fakeAssignmentStorage{
		orders: orders,
		employees: map[string]*models.Employee{
			"e1": {ID: "e1", Name: "Иванов"},
		},
	}
	service := NewAssignmentService(storage, DefaultJobNumberFormat)

	suggested, err := service.SuggestJobNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EJB-00003", suggested)

	view, err := service.Assign(context.Background(), "o1", suggested, "e1")
	require.NoError(t, err)
	assert.Equal(t, "e1", view.AssigneeID())

	snapshot := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		snapshot = append(snapshot, *order)
	}

	summary := StatsFor("e1", snapshot)
	assert.Equal(t, 1, summary.TotalAssigned)
	assert.Equal(t, 1, summary.Pending)
	assert.Equal(t, 0, summary.Completed)
}

func TestMatchRangeBounds(t *testing.T) {
	today := date("2025-03-01")

	assert.True(t, matchRange(date("2025-03-01"), RangeWeek, today))
	assert.True(t, matchRange(date("2025-03-08"), RangeWeek, today))
	assert.False(t, matchRange(date("2025-03-09"), RangeWeek, today))
	assert.False(t, matchRange(date("2025-02-28"), RangeWeek, today))
	assert.False(t, matchRange(time.Time{}, RangeWeek, today))
	assert.True(t, matchRange(time.Time{}, RangeAll, today))
}
