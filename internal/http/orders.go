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

func CreateOrder(w http.ResponseWriter, r *http.Request) {
	draft := middlewares.GetParsedJSONData[models.OrderDraft](w, r)

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	order, err := (*orderService).CreateOrder(r.Context(), draft)
	if err != nil {
		if errors.Is(err, services.ErrNoCustomer) || errors.Is(err, services.ErrEmptyOrder) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during creating order: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	middlewares.EncodeJSONResponse(w, order)
}

func GetOrders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	filter := parseOrderFilter(r)

	orders, err := (*orderService).GetOrders(r.Context(), filter)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting orders: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	middlewares.EncodeJSONResponse(w, orders)
}

func GetOrder(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	order, err := (*orderService).GetOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting order: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, order)
}

func GetOrdersSummary(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	summary, err := (*orderService).GetOrdersSummary(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting orders summary: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, summary)
}

func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	request := middlewares.GetParsedJSONData[models.StatusChangeRequest](w, r)

	workflowService := middlewares.GetServiceFromContext[models.WorkflowService](w, r, middlewares.WorkflowServiceKey)

	order, err := (*workflowService).ChangeStatus(r.Context(), chi.URLParam(r, "orderID"), models.OrderStatus(request.Status), request.Note)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			http.Error(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, services.ErrUnknownStatus):
			http.Error(w, "Unknown order status", http.StatusUnprocessableEntity)
		case errors.Is(err, services.ErrInvalidTransition):
			http.Error(w, "Status transition isn't allowed", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Error occurred during updating order status: %s", err.Error()), http.StatusInternalServerError)
		}
		return
	}

	middlewares.EncodeJSONResponse(w, order)
}

// parseOrderFilter собирает составной фильтр каталога из query-параметров.
func parseOrderFilter(r *http.Request) models.OrderFilter {
	query := r.URL.Query()

	filter := models.OrderFilter{
		Status:   models.OrderStatus(query.Get("status")),
		Range:    query.Get("range"),
		Search:   query.Get("search"),
		Employee: query.Get("employee"),
		DueToday: query.Get("due") == "today",
		Overdue:  query.Get("overdue") == "true",
	}

	if priority := query.Get("priority"); priority != "" {
		filter.Priority = models.NormalizePriority(priority)
	}

	switch query.Get("assigned") {
	case "true":
		assigned := true
		filter.Assigned = &assigned
	case "false":
		assigned := false
		filter.Assigned = &assigned
	}

	return filter
}
