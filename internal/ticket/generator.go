// Package ticket turns a list of purchased items into a rendered receipt
// document, keeps the result in memory and writes it out as a static
// artifact.
package ticket

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/catalog-ticket-service/internal/model"
)

// TaxRate is the fixed VAT applied to every ticket.
var TaxRate = decimal.RequireFromString("0.16")

const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04:05"
)

// ticket numbers name artifact files, so only a conservative charset is
// accepted.
var numberPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Artifacts persists rendered documents outside the in-memory store.
// Put returns where the document can be fetched from: either a path
// relative to the service root or an absolute URL.
type Artifacts interface {
	Put(ctx context.Context, name string, content []byte) (string, error)
}

// Options carries the fixed header/footer text and the clock.
type Options struct {
	CompanyName   string
	Address       string
	FooterMessage string
	Now           func() time.Time
}

// Generator renders tickets.  It is safe for concurrent use.
type Generator struct {
	tmpl      *Template
	store     *Store
	artifacts Artifacts
	opts      Options
}

// NewGenerator wires a generator.  artifacts may be nil, in which case
// documents only live in the store.
func NewGenerator(tmpl *Template, store *Store, artifacts Artifacts, opts Options) *Generator {
	if tmpl == nil || store == nil {
		panic("nil template or store passed to NewGenerator")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Generator{tmpl: tmpl, store: store, artifacts: artifacts, opts: opts}
}

// Totals computes subtotal, tax and total.  Tax is rounded to cents
// before being added, so the printed figures always add up.
func Totals(items []model.TicketItem) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount())
	}
	tax = subtotal.Mul(TaxRate).Round(2)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

// ArtifactName is the file name a ticket is written under.
func ArtifactName(number string) string {
	return "ticket-" + number + ".html"
}

// Validate reports the first problem with req, wrapped in ErrInvalidTicket.
func Validate(req model.TicketRequest) error {
	n := req.Number
	switch {
	case strings.TrimSpace(n) == "":
		return fmt.Errorf("%w: ticketNumber is required", ErrInvalidTicket)
	case n == "." || n == ".." || !numberPattern.MatchString(n):
		return fmt.Errorf("%w: ticketNumber %q contains unsupported characters", ErrInvalidTicket, n)
	case len(req.Items) == 0:
		return fmt.Errorf("%w: items is required", ErrInvalidTicket)
	}
	for i, it := range req.Items {
		switch {
		case strings.TrimSpace(it.Name) == "":
			return fmt.Errorf("%w: items[%d].name is required", ErrInvalidTicket, i)
		case it.Quantity <= 0:
			return fmt.Errorf("%w: items[%d].quantity must be positive", ErrInvalidTicket, i)
		case it.Price.IsNegative():
			return fmt.Errorf("%w: items[%d].price must not be negative", ErrInvalidTicket, i)
		}
	}
	return nil
}

// Generate validates req, renders the document, writes the artifact and
// stores the document under req.Number.  The artifact is written first;
// if that fails the store is left untouched.
func (g *Generator) Generate(ctx context.Context, req model.TicketRequest) (model.RenderedTicket, error) {
	if err := Validate(req); err != nil {
		return model.RenderedTicket{}, err
	}

	subtotal, tax, total := Totals(req.Items)
	now := g.opts.Now()
	date := req.Date
	if date == "" {
		date = now.Format(dateLayout)
	}
	clock := req.Time
	if clock == "" {
		clock = now.Format(timeLayout)
	}

	doc, err := g.tmpl.Render(map[string]string{
		PhCompanyName:   html.EscapeString(g.opts.CompanyName),
		PhAddress:       html.EscapeString(g.opts.Address),
		PhTicketNumber:  html.EscapeString(req.Number),
		PhDate:          html.EscapeString(date),
		PhTime:          html.EscapeString(clock),
		PhItems:         renderItems(req.Items),
		PhSubtotal:      subtotal.StringFixed(2),
		PhTax:           tax.StringFixed(2),
		PhTotal:         total.StringFixed(2),
		PhFooterMessage: html.EscapeString(g.opts.FooterMessage),
	})
	if err != nil {
		return model.RenderedTicket{}, err
	}

	out := model.RenderedTicket{
		Number:   req.Number,
		Document: doc,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
		Date:     date,
		Time:     clock,
	}
	if g.artifacts != nil {
		loc, err := g.artifacts.Put(ctx, ArtifactName(req.Number), []byte(doc))
		if err != nil {
			return model.RenderedTicket{}, fmt.Errorf("%w: write artifact: %v", ErrGeneration, err)
		}
		out.Location = loc
	}
	g.store.Put(req.Number, doc)
	return out, nil
}

func renderItems(items []model.TicketItem) string {
	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, `
      <div class="row">
        <span>%dx %s</span>
        <span>$%s</span>
      </div>`, it.Quantity, html.EscapeString(it.Name), it.Amount().StringFixed(2))
	}
	return sb.String()
}
