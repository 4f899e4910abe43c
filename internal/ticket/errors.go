package ticket

import "errors"

var (
	// ErrInvalidTicket marks a request that cannot produce a ticket:
	// empty or unsafe ticket number, no items, or a malformed item.
	ErrInvalidTicket = errors.New("invalid ticket request")

	// ErrGeneration marks a failure after validation, such as a template
	// problem or an artifact that could not be written.
	ErrGeneration = errors.New("ticket generation failed")

	// ErrTicketNotFound is returned by Store.Get for unknown numbers.
	ErrTicketNotFound = errors.New("ticket not found")
)
