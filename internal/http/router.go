package router

import (
	"log"
	"net/http"

	"github.com/Renal37/orderdesk/internal/logger"
	"github.com/Renal37/orderdesk/internal/middlewares"
	"github.com/Renal37/orderdesk/internal/models"
	"github.com/go-chi/chi/v5"
)

type Config struct {
	Endpoint string
}

type Router struct {
	config            Config
	orderService      models.OrderService
	assignmentService models.AssignmentService
	workflowService   models.WorkflowService
	employeeService   models.EmployeeService
}

func New(
	config Config,
	orderService models.OrderService,
	assignmentService models.AssignmentService,
	workflowService models.WorkflowService,
	employeeService models.EmployeeService,
) *Router {
	return &Router{
		config,
		orderService,
		assignmentService,
		workflowService,
		employeeService,
	}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(
			router.orderService,
			router.assignmentService,
			router.workflowService,
			router.employeeService,
		),
		logger.RequestLogger,
	)

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.With(middlewares.JSONMiddleware[models.OrderDraft]).Post("/", CreateOrder)
			r.Get("/", GetOrders)
			r.Get("/summary", GetOrdersSummary)
			r.Get("/job-numbers/next", GetNextJobNumber)

			r.Route("/{orderID}", func(r chi.Router) {
				r.Get("/", GetOrder)
				r.With(middlewares.JSONMiddleware[models.AssignmentRequest]).Post("/assignment", AssignOrder)
				r.With(middlewares.JSONMiddleware[models.StatusChangeRequest]).Patch("/status", UpdateOrderStatus)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", GetEmployees)
			r.Get("/{employeeID}/summary", GetEmployeeSummary)
		})
	})

	return r
}

func (router *Router) Run() {
	log.Fatal(http.ListenAndServe(router.config.Endpoint, router.get()))
}
