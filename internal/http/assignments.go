package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/orderdesk/internal/middlewares"
	"github.com/Renal37/orderdesk/internal/models"
	"github.com/Renal37/orderdesk/internal/services"
	"github.com/go-chi/chi/v5"
)

// GetNextJobNumber отдаёт совещательное предложение следующего номера работы.
// Номер не резервируется: занять его может только успешное назначение.
func GetNextJobNumber(w http.ResponseWriter, r *http.Request) {
	assignmentService := middlewares.GetServiceFromContext[models.AssignmentService](w, r, middlewares.AssignmentServiceKey)

	jobNumber, err := (*assignmentService).SuggestJobNumber(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during suggesting job number: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]string{"job_number": jobNumber})
}

// AssignOrder связывает заказ с сотрудником и номером работы. При конфликте
// (номер занят или заказ успели назначить) вызывающий обязан перечитать
// снимок и повторить запрос со свежим номером.
func AssignOrder(w http.ResponseWriter, r *http.Request) {
	request := middlewares.GetParsedJSONData[models.AssignmentRequest](w, r)

	assignmentService := middlewares.GetServiceFromContext[models.AssignmentService](w, r, middlewares.AssignmentServiceKey)

	order, err := (*assignmentService).Assign(r.Context(), chi.URLParam(r, "orderID"), request.JobNumber, request.EmployeeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingEmployee):
			http.Error(w, "Employee id is empty", http.StatusUnprocessableEntity)
		case errors.Is(err, services.ErrMissingJobNumber):
			http.Error(w, "Job number is empty", http.StatusUnprocessableEntity)
		case errors.Is(err, services.ErrInvalidJobNumber):
			http.Error(w, "Job number doesn't match the expected format", http.StatusUnprocessableEntity)
		case errors.Is(err, services.ErrDuplicateJobNumber):
			http.Error(w, "Job number is already used by another order", http.StatusConflict)
		case errors.Is(err, services.ErrOrderAlreadyAssigned):
			http.Error(w, "Order was assigned by another operator", http.StatusConflict)
		case errors.Is(err, services.ErrOrderNotFound):
			http.Error(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, services.ErrEmployeeNotFound):
			http.Error(w, "Employee not found", http.StatusNotFound)
		default:
			http.Error(w, fmt.Sprintf("Error occurred during assigning order: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, order)
}
