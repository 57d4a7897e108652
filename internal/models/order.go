package models

import "encoding/json"

// Order is a tour sale. Alish is what the agency paid for the package,
// Satish is what the customer paid the agency. The nested tourist/hotel/cost
// lists are free-form and only ever round-tripped, so they stay raw.
type Order struct {
	ID                string          `json:"id"`
	SatisNo           string          `json:"satisNo"`
	Alish             Money           `json:"alish"`
	Satish            Money           `json:"satish"`
	CreationTimestamp string          `json:"creationTimestamp"`
	Tourists          json.RawMessage `json:"tourists,omitempty"`
	Hotels            json.RawMessage `json:"hotels,omitempty"`
	Costs             json.RawMessage `json:"costs,omitempty"`
	CreatedBy         string          `json:"createdBy,omitempty"`
}

// Expense is an administrative expense package, independent of any order.
type Expense struct {
	ID                string   `json:"id"`
	Description       string   `json:"description,omitempty"`
	TotalAmount       float64  `json:"totalAmount"`
	Currency          Currency `json:"currency"`
	CreationTimestamp string   `json:"creationTimestamp"`
	CreatedBy         string   `json:"createdBy,omitempty"`
}

// OrderInput is the payload for creating an order.
type OrderInput struct {
	SatisNo  string          `json:"satisNo" validate:"required"`
	Alish    Money           `json:"alish"`
	Satish   Money           `json:"satish"`
	Tourists json.RawMessage `json:"tourists"`
	Hotels   json.RawMessage `json:"hotels"`
	Costs    json.RawMessage `json:"costs"`
}

// ExpenseInput is the payload for creating an expense package.
type ExpenseInput struct {
	Description string   `json:"description"`
	TotalAmount float64  `json:"totalAmount" validate:"required"`
	Currency    Currency `json:"currency" validate:"required"`
}

// DeletedItems is the recycle bin listing. Membership here is mutually
// exclusive with the active collections.
type DeletedItems struct {
	DeletedOrders   []Order   `json:"deletedOrders"`
	DeletedExpenses []Expense `json:"deletedExpenses"`
}
