package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Renal37/orderdesk/internal/models"
)

type key int

const (
	OrderServiceKey key = iota
	AssignmentServiceKey
	WorkflowServiceKey
	EmployeeServiceKey
)

func ServiceInjectorMiddleware(
	orderService models.OrderService,
	assignmentService models.AssignmentService,
	workflowService models.WorkflowService,
	employeeService models.EmployeeService,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), OrderServiceKey, orderService)
			ctx = context.WithValue(ctx, AssignmentServiceKey, assignmentService)
			ctx = context.WithValue(ctx, WorkflowServiceKey, workflowService)
			ctx = context.WithValue(ctx, EmployeeServiceKey, employeeService)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}
