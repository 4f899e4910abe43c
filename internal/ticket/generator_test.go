package ticket

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/catalog-ticket-service/internal/model"
)

type memArtifacts struct {
	mu    sync.Mutex
	files map[string][]byte
	err   error
}

func (m *memArtifacts) Put(_ context.Context, name string, content []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[name] = content
	return "tickets/" + name, nil
}

func item(name string, qty int, price string) model.TicketItem {
	return model.TicketItem{Name: name, Quantity: qty, Price: decimal.RequireFromString(price)}
}

func sampleItems() []model.TicketItem {
	return []model.TicketItem{
		item("Auriculares", 2, "99.99"),
		item("Teclado", 1, "149.99"),
		item("Cable", 3, "29.99"),
	}
}

func newTestGenerator(t *testing.T, arts Artifacts) (*Generator, *Store) {
	t.Helper()
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	store := NewStore()
	fixed := time.Date(2026, 10, 15, 9, 30, 5, 0, time.Local)
	g := NewGenerator(tmpl, store, arts, Options{
		CompanyName:   "Mi Empresa",
		Address:       "Calle Principal #123",
		FooterMessage: "¡Vuelva pronto!",
		Now:           func() time.Time { return fixed },
	})
	return g, store
}

func TestTotals(t *testing.T) {
	subtotal, tax, total := Totals(sampleItems())
	assert.Equal(t, "439.94", subtotal.StringFixed(2))
	assert.Equal(t, "70.39", tax.StringFixed(2))
	assert.Equal(t, "510.33", total.StringFixed(2))
}

func TestTotalsAvoidFloatDrift(t *testing.T) {
	subtotal, _, _ := Totals([]model.TicketItem{item("a", 1, "0.1"), item("b", 1, "0.2")})
	assert.True(t, subtotal.Equal(decimal.RequireFromString("0.3")))
}

func TestGenerateRendersAndStores(t *testing.T) {
	arts := &memArtifacts{}
	g, store := newTestGenerator(t, arts)

	out, err := g.Generate(context.Background(), model.TicketRequest{Number: "T1234", Items: sampleItems()})
	require.NoError(t, err)

	assert.Equal(t, "510.33", out.Total.StringFixed(2))
	assert.Equal(t, "15/10/2026", out.Date)
	assert.Equal(t, "09:30:05", out.Time)
	assert.Equal(t, "tickets/ticket-T1234.html", out.Location)

	doc, err := store.Get("T1234")
	require.NoError(t, err)
	assert.Equal(t, out.Document, doc)
	assert.Contains(t, doc, "$510.33")
	assert.Contains(t, doc, "$70.39")
	assert.Contains(t, doc, "$439.94")
	assert.Contains(t, doc, "2x Auriculares")
	assert.Contains(t, doc, "$199.98")
	assert.Contains(t, doc, "Mi Empresa")
	assert.NotContains(t, doc, "{{")
	assert.Equal(t, doc, string(arts.files["ticket-T1234.html"]))
}

func TestGenerateReplacesEveryOccurrence(t *testing.T) {
	g, _ := newTestGenerator(t, nil)
	out, err := g.Generate(context.Background(), model.TicketRequest{Number: "T9", Items: sampleItems()})
	require.NoError(t, err)

	require.Greater(t, g.tmpl.Occurrences(PhTicketNumber), 1)
	assert.Equal(t, g.tmpl.Occurrences(PhTicketNumber), strings.Count(out.Document, "T9"))
}

func TestGenerateUsesDateTimeOverrides(t *testing.T) {
	g, _ := newTestGenerator(t, nil)
	out, err := g.Generate(context.Background(), model.TicketRequest{
		Number: "T1", Items: sampleItems(), Date: "1/2/2025", Time: "10:00",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Document, "1/2/2025")
	assert.Contains(t, out.Document, "10:00")
}

func TestGenerateOverwritesSameNumber(t *testing.T) {
	g, store := newTestGenerator(t, nil)
	ctx := context.Background()

	_, err := g.Generate(ctx, model.TicketRequest{Number: "T1", Items: []model.TicketItem{item("Old", 1, "1.00")}})
	require.NoError(t, err)
	_, err = g.Generate(ctx, model.TicketRequest{Number: "T1", Items: []model.TicketItem{item("New", 1, "2.00")}})
	require.NoError(t, err)

	doc, err := store.Get("T1")
	require.NoError(t, err)
	assert.Contains(t, doc, "1x New")
	assert.NotContains(t, doc, "1x Old")
	assert.Equal(t, 1, store.Len())
}

func TestGenerateEscapesItemNames(t *testing.T) {
	g, _ := newTestGenerator(t, nil)
	out, err := g.Generate(context.Background(), model.TicketRequest{
		Number: "T1", Items: []model.TicketItem{item("<b>x</b>", 1, "1")},
	})
	require.NoError(t, err)
	assert.Contains(t, out.Document, "&lt;b&gt;x&lt;/b&gt;")
}

func TestGenerateValidation(t *testing.T) {
	g, store := newTestGenerator(t, nil)
	cases := []struct {
		name string
		req  model.TicketRequest
	}{
		{"empty number", model.TicketRequest{Items: sampleItems()}},
		{"blank number", model.TicketRequest{Number: "  ", Items: sampleItems()}},
		{"path in number", model.TicketRequest{Number: "../x", Items: sampleItems()}},
		{"dot dot", model.TicketRequest{Number: "..", Items: sampleItems()}},
		{"no items", model.TicketRequest{Number: "T1"}},
		{"zero quantity", model.TicketRequest{Number: "T1", Items: []model.TicketItem{item("a", 0, "1")}}},
		{"negative price", model.TicketRequest{Number: "T1", Items: []model.TicketItem{item("a", 1, "-1")}}},
		{"missing name", model.TicketRequest{Number: "T1", Items: []model.TicketItem{item("", 1, "1")}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Generate(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidTicket)
		})
	}
	assert.Equal(t, 0, store.Len())
}

func TestGenerateArtifactFailureLeavesStoreUntouched(t *testing.T) {
	g, store := newTestGenerator(t, &memArtifacts{err: errors.New("disk full")})
	_, err := g.Generate(context.Background(), model.TicketRequest{Number: "T1", Items: sampleItems()})
	assert.ErrorIs(t, err, ErrGeneration)

	_, err = store.Get("T1")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
