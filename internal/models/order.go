package models

import "time"

// Order statuses.
const (
	OrderStatusProcessing = "processing"
	OrderStatusSuccess    = "success"
	OrderStatusCanceled   = "canceled"
)

// Payment methods and statuses.
const (
	PaymentMethodCard      = "card"
	PaymentMethodUPI       = "upi"
	PaymentStatusCompleted = "completed"
)

// OrderItem is a snapshot of a cart line at checkout time.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"` // Price at the time of order
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}

// Address is a delivery address.
type Address struct {
	FullName string `json:"fullName" validate:"required"`
	Mobile   string `json:"mobile" validate:"required,mobile"`
	House    string `json:"house" validate:"required"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	Pincode  string `json:"pincode" validate:"required,pincode"`
	State    string `json:"state" validate:"required"`
}

// Order represents a placed customer order.
type Order struct {
	ID               string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID           string      `json:"userId" gorm:"type:varchar(36);index"`
	Items            []OrderItem `json:"items" gorm:"type:text;serializer:json"`
	TotalAmount      float64     `json:"totalAmount"`
	PaymentMethod    string      `json:"paymentMethod" gorm:"type:varchar(20)"`
	PaymentStatus    string      `json:"paymentStatus" gorm:"type:varchar(20)"`
	PaymentReference string      `json:"paymentReference" gorm:"type:varchar(100)"`
	Address          Address     `json:"address" gorm:"type:text;serializer:json"`
	Status           string      `json:"status" gorm:"type:varchar(20);index"`
	CreatedAt        time.Time   `json:"date"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// Order event types.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is published to the message broker when an order changes.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"orderId"`
	UserID      string    `json:"userId"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	OccurredAt  time.Time `json:"occurredAt"`
}
