package domain

// DashboardStats is the per-owner aggregate shown on the dashboard.
// Every field is zero when the owner has no rows.
type DashboardStats struct {
	Total       int
	Pending     int
	Active      int
	Completed   int
	Delivered   int
	Overdue     int
	Clients     int
	BudgetSum   float64
	RevenueSum  float64
	AvgProgress float64
}
