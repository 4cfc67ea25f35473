package models

import (
	"time"
)

// Order statuses
const (
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// ValidStatusTransitions maps each order status to the statuses it may move to.
// delivered and cancelled are terminal.
var ValidStatusTransitions = map[string][]string{
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// Order represents a customer order in the system
type Order struct {
	ID                 string              `gorm:"primaryKey;size:16" json:"id"` // FLR + 8 chars
	CustomerEmail      string              `gorm:"index" json:"customer_email"`
	CustomerName       string              `json:"customer_name"`
	CustomerPhone      string              `json:"customer_phone"`
	Total              float64             `gorm:"not null" json:"total"`
	Status             string              `gorm:"not null;default:'confirmed'" json:"status"`
	DeliveryType       string              `json:"delivery_type"` // immediate or scheduled
	DeliveryDatetime   string              `json:"delivery_datetime"`
	IsRecurring        bool                `json:"is_recurring"`
	RecurrenceType     string              `json:"recurrence_type"` // 'annual'
	NextRecurrenceDate string              `json:"next_recurrence_date"`
	Items              []OrderItem         `gorm:"foreignKey:OrderID" json:"items"`
	Notifications      []OrderNotification `gorm:"foreignKey:OrderID" json:"notifications,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// CanTransitionTo reports whether the order may move to the given status
func (o *Order) CanTransitionTo(status string) bool {
	for _, allowed := range ValidStatusTransitions[o.Status] {
		if allowed == status {
			return true
		}
	}
	return false
}

// CanCancel reports whether the order may still be cancelled by the customer
func (o *Order) CanCancel() bool {
	return o.Status == StatusConfirmed || o.Status == StatusPreparing
}

// AnnualRecurrenceDate returns the same month/day one year after the given
// delivery datetime, or "" when the datetime cannot be parsed.
func AnnualRecurrenceDate(deliveryDatetime string) string {
	if len(deliveryDatetime) < 10 {
		return ""
	}
	d, err := time.Parse("2006-01-02", deliveryDatetime[:10])
	if err != nil {
		return ""
	}
	return d.AddDate(1, 0, 0).Format("2006-01-02")
}

// OrderItem is a single product line on an order. Lines are immutable once written.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   string  `gorm:"not null;index" json:"order_id"`
	ProductID int     `gorm:"not null" json:"product_id"`
	Name      string  `gorm:"not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	Image     string  `gorm:"-" json:"image"` // joined from the catalog when listing
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderNotification records one status-notification attempt on an order
type OrderNotification struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	OrderID string    `gorm:"not null;index" json:"order_id"`
	Channel string    `gorm:"not null" json:"channel"` // sms or whatsapp
	Status  string    `gorm:"not null" json:"status"`
	Message string    `json:"message"`
	Phone   string    `json:"phone"`
	Sent    bool      `json:"sent"`
	SentAt  time.Time `gorm:"autoCreateTime" json:"sent_at"`
}

// TableName specifies the table name for the OrderNotification model
func (OrderNotification) TableName() string {
	return "order_notifications"
}
