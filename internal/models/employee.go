package models

type Employee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// EmployeeSummary — загрузка сотрудника, вычисляется сканированием заказов,
// на сотруднике ничего не хранится.
type EmployeeSummary struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	TotalAssigned int    `json:"total_assigned"`
	Pending       int    `json:"pending"`
	Completed     int    `json:"completed"`
	ActiveOrders  int    `json:"active_orders"`
}
