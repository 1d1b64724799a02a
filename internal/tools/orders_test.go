package tools

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBook_Status(t *testing.T) {
	book := NewOrderBook()

	o := book.Status("ord-003")
	assert.Equal(t, StatusDelivered, o.Status)
	assert.Equal(t, []string{"monitor"}, o.Items)
	assert.NotEmpty(t, o.DeliveryAddress)

	o.Items[0] = "mutated"
	assert.Equal(t, []string{"monitor"}, book.Status("ORD-003").Items)

	o = book.Status("ORD-999")
	assert.Equal(t, OrderNotFound, o.Status)
	assert.NotEmpty(t, o.Error)
}

func TestOrderBook_ChangeAddress(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		address     string
		wantSuccess bool
		wantAddress string
	}{
		{name: "ordered", id: "ORD-002", address: "Seoul, Mapo-gu 1", wantSuccess: true, wantAddress: "Seoul, Mapo-gu 1"},
		{name: "lower case id", id: " ord-001 ", address: "Suwon 3", wantSuccess: true, wantAddress: "Suwon 3"},
		{name: "delivered", id: "ORD-003", address: "Seoul 1", wantAddress: "Incheon, Yeonsu-gu, Songdo 7"},
		{name: "blank address", id: "ORD-002", address: "  ", wantAddress: "Busan, Haeundae-gu, Marine-ro 45"},
		{name: "missing", id: "ORD-404", address: "Seoul 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := NewOrderBook()
			res := book.ChangeAddress(tt.id, tt.address)
			assert.Equal(t, tt.wantSuccess, res.Success, res.Message)
			assert.NotEmpty(t, res.Message)
			assert.Equal(t, tt.wantAddress, book.Status(tt.id).DeliveryAddress)
		})
	}
}

func TestOrderBook_Cancel(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		wantSuccess bool
		wantStatus  string
	}{
		{name: "ordered", id: "ORD-005", wantSuccess: true, wantStatus: OrderNotFound},
		{name: "shipping", id: "ORD-004", wantSuccess: true, wantStatus: OrderNotFound},
		{name: "delivered", id: "ORD-003", wantStatus: StatusDelivered},
		{name: "missing", id: "ORD-404", wantStatus: OrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := NewOrderBook()
			res := book.Cancel(tt.id)
			assert.Equal(t, tt.wantSuccess, res.Success, res.Message)
			assert.Equal(t, tt.wantStatus, book.Status(tt.id).Status)
		})
	}

	book := NewOrderBook()
	require.True(t, book.Cancel("ORD-002").Success)
	assert.False(t, book.Cancel("ORD-002").Success)
}

func TestOrderBook_Concurrent(t *testing.T) {
	book := NewOrderBookWith(OrderStatus{OrderID: "ORD-100", Status: StatusOrdered, Items: []string{"pen"}})

	var wg sync.WaitGroup
	wins := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			book.ChangeAddress("ORD-100", "Busan 1")
			wins <- book.Cancel("ORD-100").Success
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for ok := range wins {
		if ok {
			won++
		}
	}
	assert.Equal(t, 1, won)
}

func TestOrderTools_ShareBook(t *testing.T) {
	book := NewOrderBook()
	r := NewRegistry()
	require.NoError(t, r.Register(BuiltinsWithOrders(fixedClock, book)...))
	ctx := context.Background()

	out, err := r.Call(ctx, ChangeAddressTool, `{"orderId":"ORD-002","newAddress":"Daejeon 5"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"delivery address of ORD-002 changed to Daejeon 5"}`, out)

	out, err = r.Call(ctx, OrderStatusTool, `{"orderId":"ORD-002"}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"deliveryAddress":"Daejeon 5"`)

	out, err = r.Call(ctx, CancelOrderTool, `{"orderId":"ORD-002"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"order ORD-002 cancelled"}`, out)

	out, err = r.Call(ctx, OrderStatusTool, `{"orderId":"ORD-002"}`)
	require.NoError(t, err)
	assert.Contains(t, out, OrderNotFound)
}
