package models

// AssignmentRequest — тело запроса на назначение заказа сотруднику.
type AssignmentRequest struct {
	JobNumber  string `json:"job_number"`
	EmployeeID string `json:"employee_id"`
}

// StatusChangeRequest — тело запроса на смену статуса заказа.
type StatusChangeRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}
