package models

import "time"

// RecentOrder is an order line of the admin dashboard.
type RecentOrder struct {
	ID          string    `json:"id"`
	UserName    string    `json:"userName"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

// DashboardStats aggregates the store for the admin dashboard.
type DashboardStats struct {
	TotalUsers    int           `json:"totalUsers"`
	TotalProducts int           `json:"totalProducts"`
	TotalOrders   int           `json:"totalOrders"`
	TotalRevenue  float64       `json:"totalRevenue"`
	RecentOrders  []RecentOrder `json:"recentOrders"`
}
