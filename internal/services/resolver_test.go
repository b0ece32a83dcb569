package services

import (
	"testing"
	"time"

	"github.com/Renal37/orderdesk/internal/models"
	"github.com/Renal37/orderdesk/internal/utils"
	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func datePtr(value string) *utils.RFC3339Date {
	return &utils.RFC3339Date{Time: date(value)}
}

func TestResolveOrderPriority(t *testing.T) {
	testCases := []struct {
		testName string
		order    models.Order
		expected models.Priority
	}{
		{
			testName: "Should derive High when any item has High priority",
			order: models.Order{
				Priority: models.PriorityNormal,
				Items: []models.Item{
					{Priority: "normal"},
					{Priority: "high"},
				},
			},
			expected: models.PriorityHigh,
		},
		{
			testName: "Should ignore the order-level priority when an item is High",
			order: models.Order{
				Priority: models.PriorityNormal,
				Items:    []models.Item{{Priority: "HIGH"}},
			},
			expected: models.PriorityHigh,
		},
		{
			testName: "Should fall back to the order-level priority",
			order: models.Order{
				Priority: models.PriorityHigh,
				Items:    []models.Item{{Priority: models.PriorityNormal}},
			},
			expected: models.PriorityHigh,
		},
		{
			testName: "Should default to Normal",
			order:    models.Order{},
			expected: models.PriorityNormal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveOrder(&tc.order).Priority)
		})
	}
}

func TestResolveOrderDeadline(t *testing.T) {
	testCases := []struct {
		testName string
		order    models.Order
		expected time.Time
	}{
		{
			testName: "Should pick the latest of item dates and the order estimate",
			order: models.Order{
				StartDate:             utils.RFC3339Date{Time: date("2025-01-01")},
				EstimatedDeliveryDate: datePtr("2025-01-10"),
				Items: []models.Item{
					{DeliveryDate: datePtr("2025-01-05")},
					{DeliveryDate: datePtr("2025-01-20")},
				},
			},
			expected: date("2025-01-20"),
		},
		{
			testName: "Should use the order estimate when it is the latest",
			order: models.Order{
				StartDate:             utils.RFC3339Date{Time: date("2025-01-01")},
				EstimatedDeliveryDate: datePtr("2025-02-01"),
				Items:                 []models.Item{{DeliveryDate: datePtr("2025-01-05")}},
			},
			expected: date("2025-02-01"),
		},
		{
			testName: "Should fall back to the start date without any deadline data",
			order: models.Order{
				StartDate: utils.RFC3339Date{Time: date("2025-01-01")},
				Items:     []models.Item{{}},
			},
			expected: date("2025-01-01"),
		},
		{
			testName: "Should exclude absent item dates from the computation",
			order: models.Order{
				StartDate: utils.RFC3339Date{Time: date("2025-01-01")},
				Items: []models.Item{
					{DeliveryDate: nil},
					{DeliveryDate: &utils.RFC3339Date{}},
					{DeliveryDate: datePtr("2025-01-15")},
				},
			},
			expected: date("2025-01-15"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveOrder(&tc.order).Deadline)
		})
	}
}

func TestResolveViewOverdue(t *testing.T) {
	now := date("2025-03-01")

	overdueOrder := models.Order{
		StartDate: utils.RFC3339Date{Time: date("2025-01-01")},
		Status:    models.StatusManufacturing,
		Items:     []models.Item{{DeliveryDate: datePtr("2025-02-01")}},
	}

	assert.True(t, ResolveView(overdueOrder, now).Overdue)

	completedOrder := overdueOrder
	completedOrder.Status = models.StatusCompleted

	// Завершённый заказ просроченным не считается.
	assert.False(t, ResolveView(completedOrder, now).Overdue)

	futureOrder := overdueOrder
	futureOrder.Items = []models.Item{{DeliveryDate: datePtr("2025-04-01")}}

	assert.False(t, ResolveView(futureOrder, now).Overdue)
}
