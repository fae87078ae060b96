package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

type Address struct {
	Street  string `bson:"street" json:"street" binding:"required"`
	City    string `bson:"city" json:"city" binding:"required"`
	State   string `bson:"state" json:"state" binding:"required"`
	ZipCode string `bson:"zipCode" json:"zipCode" binding:"required"`
	Country string `bson:"country" json:"country" binding:"required"`
}

type OrderItem struct {
	Product      primitive.ObjectID  `bson:"product" json:"product"`
	Quantity     int                 `bson:"quantity" json:"quantity"`
	Price        float64             `bson:"price" json:"price"`
	Prescription *primitive.ObjectID `bson:"prescription,omitempty" json:"prescription,omitempty"`
	LensOptions  *LensSelection      `bson:"lensOptions,omitempty" json:"lensOptions,omitempty"`
}

// Order is an immutable snapshot of a purchase. Items carry the price paid at
// checkout, not the live catalog price; only the two status fields and the
// tracking number change after creation.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	OrderNumber     string             `bson:"orderNumber" json:"orderNumber"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingAddress Address            `bson:"shippingAddress" json:"shippingAddress"`
	BillingAddress  Address            `bson:"billingAddress" json:"billingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	PaymentIntentID string             `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	OrderStatus     string             `bson:"orderStatus" json:"orderStatus"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	ShippingCost    float64            `bson:"shippingCost" json:"shippingCost"`
	Tax             float64            `bson:"tax" json:"tax"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	TrackingNumber  string             `bson:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Cancellable reports whether the order may still enter the cancellation flow.
// Shipped and delivered orders are past the point of stock restoration.
func (o *Order) Cancellable() bool {
	return o.OrderStatus == OrderPending || o.OrderStatus == OrderProcessing
}
