package dto

import "github.com/shopspring/decimal"

// CheckoutRequest body para POST /api/ledger/checkout.
type CheckoutRequest struct {
	ItemID   int64  `json:"item_id"`
	Quantity int64  `json:"quantity"`
	JobNo    string `json:"job_no"`
}

// CheckoutResponse resultado de una salida de stock.
type CheckoutResponse struct {
	NewQuantity     int64           `json:"new_quantity"`
	LowStockAlert   bool            `json:"low_stock_alert"`
	UnitPriceAtTime decimal.Decimal `json:"unit_price_at_time"`
	LineValue       decimal.Decimal `json:"line_value"`
}

// ReceiveRequest body para POST /api/ledger/receive.
type ReceiveRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int64 `json:"quantity"`
}

// ReceiveResponse resultado de una entrada de stock.
type ReceiveResponse struct {
	NewQuantity     int64           `json:"new_quantity"`
	UnitPriceAtTime decimal.Decimal `json:"unit_price_at_time"`
}

// ReverseRequest body para POST /api/ledger/reverse.
type ReverseRequest struct {
	TransactionID int64 `json:"transaction_id"`
}

// ReverseResponse resultado de anular una transacción.
type ReverseResponse struct {
	ItemID       int64 `json:"item_id"`
	NewQuantity  int64 `json:"new_quantity"`
	ReversedFrom int64 `json:"reversed_from"`
}
