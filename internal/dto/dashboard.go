package dto

// DashboardStats is the summary shown on the back-office landing page.
// Balance is a fixed two-decimal string; it may be negative.
type DashboardStats struct {
	EmployeeCount int64  `json:"employeeCount"`
	Balance       string `json:"balance"`
	SalesToday    int64  `json:"salesToday"`
	InventoryLots int64  `json:"inventoryLots"`
}
