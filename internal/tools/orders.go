package tools

import (
	"slices"
	"strings"
	"sync"
)

const (
	OrderNotFound = "NOT_FOUND"

	StatusOrdered   = "ordered"
	StatusShipping  = "shipping"
	StatusDelivered = "delivered"
)

type OrderArgs struct {
	OrderID string `json:"orderId" jsonschema:"description=Order number such as ORD-001"`
}

type AddressChangeArgs struct {
	OrderID    string `json:"orderId" jsonschema:"description=Order number such as ORD-001"`
	NewAddress string `json:"newAddress" jsonschema:"description=Full new delivery address"`
}

type OrderStatus struct {
	OrderID         string   `json:"orderId"`
	Status          string   `json:"status"`
	Items           []string `json:"items"`
	TotalAmount     float64  `json:"totalAmount"`
	DeliveryAddress string   `json:"deliveryAddress,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// OrderResult reports the outcome of an order change.
type OrderResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OrderBook is an in-memory order table safe for concurrent tool calls.
type OrderBook struct {
	mu     sync.RWMutex
	orders map[string]OrderStatus
}

var sampleOrders = []OrderStatus{
	{OrderID: "ORD-001", Status: StatusShipping, Items: []string{"laptop", "mouse"}, TotalAmount: 1500000, DeliveryAddress: "Seoul, Gangnam-gu, Teheran-ro 123"},
	{OrderID: "ORD-002", Status: StatusOrdered, Items: []string{"keyboard"}, TotalAmount: 150000, DeliveryAddress: "Busan, Haeundae-gu, Marine-ro 45"},
	{OrderID: "ORD-003", Status: StatusDelivered, Items: []string{"monitor"}, TotalAmount: 300000, DeliveryAddress: "Incheon, Yeonsu-gu, Songdo 7"},
	{OrderID: "ORD-004", Status: StatusShipping, Items: []string{"speaker", "headset"}, TotalAmount: 250000, DeliveryAddress: "Daegu, Suseong-gu, Dongdaegu-ro 9"},
	{OrderID: "ORD-005", Status: StatusOrdered, Items: []string{"webcam"}, TotalAmount: 80000, DeliveryAddress: "Jeju, Jeju-si, Nohyeong-ro 2"},
}

// NewOrderBook returns a book holding the sample orders ORD-001 to ORD-005.
func NewOrderBook() *OrderBook {
	return NewOrderBookWith(sampleOrders...)
}

func NewOrderBookWith(orders ...OrderStatus) *OrderBook {
	b := &OrderBook{orders: make(map[string]OrderStatus, len(orders))}
	for _, o := range orders {
		o.Items = slices.Clone(o.Items)
		b.orders[normalizeOrderID(o.OrderID)] = o
	}
	return b
}

func (b *OrderBook) Status(id string) OrderStatus {
	id = normalizeOrderID(id)
	b.mu.RLock()
	defer b.mu.RUnlock()

	o, ok := b.orders[id]
	if !ok {
		return OrderStatus{OrderID: id, Status: OrderNotFound, Items: []string{}, Error: "order not found"}
	}
	o.Items = slices.Clone(o.Items)
	return o
}

// ChangeAddress updates the delivery address. Delivered orders keep their address.
func (b *OrderBook) ChangeAddress(id, address string) OrderResult {
	id = normalizeOrderID(id)
	address = strings.TrimSpace(address)
	if address == "" {
		return OrderResult{Message: "new address must not be empty"}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	o, ok := b.orders[id]
	if !ok {
		return OrderResult{Message: "order not found: " + id}
	}
	if o.Status == StatusDelivered {
		return OrderResult{Message: "order " + id + " is already delivered"}
	}
	o.DeliveryAddress = address
	b.orders[id] = o
	return OrderResult{Success: true, Message: "delivery address of " + id + " changed to " + address}
}

// Cancel removes the order. Delivered orders cannot be cancelled.
func (b *OrderBook) Cancel(id string) OrderResult {
	id = normalizeOrderID(id)
	b.mu.Lock()
	defer b.mu.Unlock()

	o, ok := b.orders[id]
	if !ok {
		return OrderResult{Message: "order not found: " + id}
	}
	if o.Status == StatusDelivered {
		return OrderResult{Message: "order " + id + " is already delivered"}
	}
	delete(b.orders, id)
	return OrderResult{Success: true, Message: "order " + id + " cancelled"}
}

func normalizeOrderID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
