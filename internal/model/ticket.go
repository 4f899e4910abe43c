package model

import "github.com/shopspring/decimal"

// TicketItem is a single line on a ticket.  Items are supplied by the
// caller and are not checked against the catalog.
type TicketItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Amount returns quantity × price.
func (i TicketItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TicketRequest is the input to ticket generation.  Number is chosen by
// the caller and is the only key under which the rendered document is
// stored; reusing a number replaces the previous document.
type TicketRequest struct {
	Number string
	Items  []TicketItem
	Date   string // optional override, rendered verbatim
	Time   string // optional override, rendered verbatim
}

// RenderedTicket is the outcome of a successful generation.
type RenderedTicket struct {
	Number   string
	Document string
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Date     string
	Time     string
	Location string // where the artifact copy can be fetched, if one was written
}
