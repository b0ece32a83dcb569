package services

import (
	"context"
	"testing"

	"github.com/Renal37/orderdesk/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	testCases := []struct {
		testName string
		current  models.OrderStatus
		next     models.OrderStatus
		expected error
	}{
		{
			testName: "Should allow a move to the next stage",
			current:  models.StatusNew,
			next:     models.StatusVerified,
			expected: nil,
		},
		{
			testName: "Should allow skipping stages forward",
			current:  models.StatusNew,
			next:     models.StatusCompleted,
			expected: nil,
		},
		{
			testName: "Should allow closing from the middle of the cycle",
			current:  models.StatusQualityCheck,
			next:     models.StatusDispatch,
			expected: nil,
		},
		{
			testName: "Should reject a move backwards",
			current:  models.StatusDispatch,
			next:     models.StatusManufacturing,
			expected: ErrInvalidTransition,
		},
		{
			testName: "Should reject a move into the same stage",
			current:  models.StatusManufacturing,
			next:     models.StatusManufacturing,
			expected: ErrInvalidTransition,
		},
		{
			testName: "Should reject any move out of Completed",
			current:  models.StatusCompleted,
			next:     models.StatusNew,
			expected: ErrInvalidTransition,
		},
		{
			testName: "Should reject an unknown current status",
			current:  "Archived",
			next:     models.StatusCompleted,
			expected: ErrUnknownStatus,
		},
		{
			testName: "Should reject an unknown target status",
			current:  models.StatusNew,
			next:     "Shipped",
			expected: ErrUnknownStatus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			err := ValidateTransition(tc.current, tc.next)
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

type fakeWorkflowStorage struct {
	orders   map[string]*models.Order
	statuses []models.OrderStatus
	notes    []string
}

func (fs *fakeWorkflowStorage) FindOrder(_ context.Context, orderID string) (*models.Order, error) {
	return fs.orders[orderID], nil
}

func (fs *fakeWorkflowStorage) UpdateOrderStatus(_ context.Context, orderID string, status models.OrderStatus, note string) error {
	fs.orders[orderID].Status = status
	fs.statuses = append(fs.statuses, status)
	fs.notes = append(fs.notes, note)
	return nil
}

func TestWorkflowServiceChangeStatus(t *testing.T) {
	storage := &fakeWorkflowStorage{
		orders: map[string]*models.Order{
			"o1": {ID: "o1", CustomerName: "ООО Ромашка", Status: models.StatusNew},
		},
	}
	service := NewWorkflowService(storage)

	view, err := service.ChangeStatus(context.Background(), "o1", models.StatusVerified, "проверено")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusVerified, view.Status)
	assert.Equal(t, []string{"проверено"}, storage.notes)

	_, err = service.ChangeStatus(context.Background(), "o1", models.StatusNew, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = service.ChangeStatus(context.Background(), "missing", models.StatusVerified, "")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Отклонённый переход не должен попадать в хранилище.
	assert.Equal(t, []models.OrderStatus{models.StatusVerified}, storage.statuses)
}
