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

func GetEmployees(w http.ResponseWriter, r *http.Request) {
	employeeService := middlewares.GetServiceFromContext[models.EmployeeService](w, r, middlewares.EmployeeServiceKey)

	employees, err := (*employeeService).GetEmployees(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting employees: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	if len(employees) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	middlewares.EncodeJSONResponse(w, employees)
}

func GetEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	employeeService := middlewares.GetServiceFromContext[models.EmployeeService](w, r, middlewares.EmployeeServiceKey)

	summary, err := (*employeeService).GetEmployeeSummary(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			http.Error(w, "Employee not found", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting employee summary: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, summary)
}
