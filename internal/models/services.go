package models

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	CreateOrder(ctx context.Context, draft OrderDraft) (*OrderView, error)

	GetOrder(ctx context.Context, orderID string) (*OrderView, error)

	GetOrders(ctx context.Context, filter OrderFilter) ([]OrderView, error)

	GetOrdersSummary(ctx context.Context) (OrdersSummary, error)
}

//go:generate mockgen -destination=mocks/mock_assignment.go . AssignmentService
type AssignmentService interface {
	SuggestJobNumber(ctx context.Context) (string, error)

	Assign(ctx context.Context, orderID, jobNumber, employeeID string) (*OrderView, error)
}

//go:generate mockgen -destination=mocks/mock_workflow.go . WorkflowService
type WorkflowService interface {
	ChangeStatus(ctx context.Context, orderID string, status OrderStatus, note string) (*OrderView, error)
}

//go:generate mockgen -destination=mocks/mock_employee.go . EmployeeService
type EmployeeService interface {
	GetEmployees(ctx context.Context) ([]Employee, error)

	GetEmployeeSummary(ctx context.Context, employeeID string) (EmployeeSummary, error)
}
