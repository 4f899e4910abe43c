// Package queue defines message payloads exchanged over the message broker
// and the consumer that turns them into an audit log.
package queue

// TicketGeneratedEvent is published after a ticket has been rendered and
// stored.  It carries enough for downstream consumers to log or notify
// without fetching the document.
type TicketGeneratedEvent struct {
	TicketNumber string `json:"ticket_number"`
	ItemCount    int    `json:"item_count"`
	Subtotal     string `json:"subtotal"`
	Tax          string `json:"tax"`
	Total        string `json:"total"`
	Location     string `json:"location,omitempty"`
	GeneratedAt  string `json:"generated_at"`
}
