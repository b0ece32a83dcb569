package models

import (
	"strings"

	"github.com/Renal37/orderdesk/internal/utils"
	"github.com/shopspring/decimal"
)

type OrderStatus string

// Стадии производственного цикла заказа. Переходы допускаются только вперёд
// по этому списку, Completed — терминальная стадия.
const (
	StatusNew           OrderStatus = "New"
	StatusVerified      OrderStatus = "Verified"
	StatusManufacturing OrderStatus = "Manufacturing"
	StatusQualityCheck  OrderStatus = "Quality_Check"
	StatusDocumentation OrderStatus = "Documentation"
	StatusDispatch      OrderStatus = "Dispatch"
	StatusCompleted     OrderStatus = "Completed"
)

type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
)

// NormalizePriority приводит приоритет к каноническому написанию.
// Регистр входного значения не важен, всё нераспознанное считается Normal.
func NormalizePriority(raw string) Priority {
	if strings.EqualFold(strings.TrimSpace(raw), string(PriorityHigh)) {
		return PriorityHigh
	}
	return PriorityNormal
}

func (p Priority) IsHigh() bool {
	return strings.EqualFold(string(p), string(PriorityHigh))
}

type Item struct {
	Name         string             `json:"name"`
	Quantity     float64            `json:"quantity"`
	Unit         string             `json:"unit,omitempty"`
	Rate         decimal.Decimal    `json:"rate"`
	Amount       decimal.Decimal    `json:"amount"`
	DeliveryDate *utils.RFC3339Date `json:"delivery_date,omitempty"`
	Priority     Priority           `json:"priority"`
}

type Order struct {
	ID                    string             `json:"id"`
	PONumber              string             `json:"po_number,omitempty"`
	CustomerName          string             `json:"customer_name"`
	JobNumber             *string            `json:"job_number,omitempty"`
	StartDate             utils.RFC3339Date  `json:"start_date"`
	EstimatedDeliveryDate *utils.RFC3339Date `json:"estimated_delivery_date,omitempty"`
	Status                OrderStatus        `json:"status"`
	Priority              Priority           `json:"priority"`
	Items                 []Item             `json:"items"`
	TotalAmount           decimal.Decimal    `json:"total_amount"`
	Notes                 string             `json:"notes,omitempty"`

	// Исторически назначенный сотрудник записывался в три разных поля.
	// Читать их напрямую нельзя — только через AssigneeID.
	AssignedAccountEmployee *string `json:"assigned_account_employee,omitempty"`
	AccountsEmployee        *string `json:"accounts_employee,omitempty"`
	AssignedTo              *string `json:"assigned_to,omitempty"`
}

// AssigneeID возвращает идентификатор назначенного сотрудника, учитывая все
// унаследованные варианты поля. Единственная точка чтения этой связи:
// её используют и фильтр неназначенных заказов, и агрегатор загрузки.
func (o *Order) AssigneeID() string {
	for _, alias := range []*string{o.AssignedAccountEmployee, o.AccountsEmployee, o.AssignedTo} {
		if alias != nil && *alias != "" {
			return *alias
		}
	}
	return ""
}

// Unassigned сообщает, свободен ли заказ для назначения.
func (o *Order) Unassigned() bool {
	return o.AssigneeID() == ""
}

// InProgress — заказ в работе, если он вышел из New, но ещё не Completed.
func (o *Order) InProgress() bool {
	return o.Status != StatusNew && o.Status != StatusCompleted
}

// OrderView — заказ вместе с производными полями. Производные значения никогда
// не сохраняются, они пересчитываются на каждом чтении.
type OrderView struct {
	Order
	EffectivePriority Priority          `json:"effective_priority"`
	EffectiveStart    utils.RFC3339Date `json:"effective_start"`
	EffectiveDeadline utils.RFC3339Date `json:"effective_deadline"`
	Overdue           bool              `json:"overdue"`
}

// OrderDraft — входные данные формы оформления заказа.
type OrderDraft struct {
	PONumber              string             `json:"po_number"`
	CustomerName          string             `json:"customer_name"`
	StartDate             *utils.RFC3339Date `json:"start_date,omitempty"`
	EstimatedDeliveryDate *utils.RFC3339Date `json:"estimated_delivery_date,omitempty"`
	Priority              string             `json:"priority,omitempty"`
	Items                 []ItemDraft        `json:"items"`
	Notes                 string             `json:"notes,omitempty"`
}

type ItemDraft struct {
	Name         string             `json:"name"`
	Quantity     float64            `json:"quantity"`
	Unit         string             `json:"unit,omitempty"`
	Rate         decimal.Decimal    `json:"rate"`
	Amount       decimal.Decimal    `json:"amount"`
	DeliveryDate *utils.RFC3339Date `json:"delivery_date,omitempty"`
	Priority     string             `json:"priority,omitempty"`
}

// OrderFilter описывает составной фильтр каталога заказов.
type OrderFilter struct {
	Status   OrderStatus
	Priority Priority
	Range    string // 7days | 30days | all
	Search   string
	Assigned *bool
	DueToday bool
	Overdue  bool
	Employee string
}

type OrdersSummary struct {
	Total     int `json:"total"`
	Mapped    int `json:"mapped"`
	NotMapped int `json:"not_mapped"`
}

