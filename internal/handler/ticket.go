package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/catalog-ticket-service/internal/metrics"
	"github.com/iliyamo/catalog-ticket-service/internal/model"
	"github.com/iliyamo/catalog-ticket-service/internal/queue"
	"github.com/iliyamo/catalog-ticket-service/internal/ticket"
)

// EventPublisher announces generated tickets.  Publishing is best effort.
type EventPublisher interface {
	PublishTicketGenerated(ctx context.Context, ev queue.TicketGeneratedEvent) error
}

// TicketHandler generates tickets and serves them back from memory.
type TicketHandler struct {
	Generator *ticket.Generator
	Store     *ticket.Store
	Events    EventPublisher // optional
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// NewTicketHandler panics when a required dependency is nil.
func NewTicketHandler(gen *ticket.Generator, store *ticket.Store, events EventPublisher, m *metrics.Metrics, log *slog.Logger) *TicketHandler {
	if gen == nil || store == nil || m == nil || log == nil {
		panic("nil dependency passed to NewTicketHandler")
	}
	return &TicketHandler{Generator: gen, Store: store, Events: events, Metrics: m, Logger: log}
}

type ticketItemBody struct {
	Name      string           `json:"name"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

type generateTicketBody struct {
	TicketNumber string           `json:"ticketNumber"`
	Items        []ticketItemBody `json:"items"`
	Date         string           `json:"date"`
	Time         string           `json:"time"`
}

func (b generateTicketBody) request() (model.TicketRequest, bool) {
	req := model.TicketRequest{
		Number: strings.TrimSpace(b.TicketNumber),
		Items:  make([]model.TicketItem, 0, len(b.Items)),
		Date:   strings.TrimSpace(b.Date),
		Time:   strings.TrimSpace(b.Time),
	}
	for _, it := range b.Items {
		price := it.Price
		if price == nil {
			price = it.UnitPrice
		}
		if price == nil {
			return req, false
		}
		req.Items = append(req.Items, model.TicketItem{Name: it.Name, Quantity: it.Quantity, Price: *price})
	}
	return req, true
}

// GenerateTicket handles POST /generate-ticket.  On success it returns
// {"url": ...} pointing at the stored artifact, or at /ticket/:id when no
// artifact was written.
func (h *TicketHandler) GenerateTicket(c echo.Context) error {
	var body generateTicketBody
	if err := c.Bind(&body); err != nil {
		h.Metrics.Tickets.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req, ok := body.request()
	if !ok {
		h.Metrics.Tickets.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "every item needs a price"})
	}

	ctx := c.Request().Context()
	out, err := h.Generator.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, ticket.ErrInvalidTicket) {
			h.Metrics.Tickets.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.Metrics.Tickets.WithLabelValues("error").Inc()
		h.Logger.Error("error generating ticket", "ticket", req.Number, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error generating ticket"})
	}
	h.Metrics.Tickets.WithLabelValues("ok").Inc()
	h.Logger.Info("ticket generated", "ticket", out.Number, "total", out.Total.StringFixed(2), "location", out.Location)

	h.publish(ctx, out, len(req.Items))
	return c.JSON(http.StatusOK, echo.Map{"url": absoluteURL(c, out)})
}

// GetTicket handles GET /ticket/:id and returns the stored HTML.
func (h *TicketHandler) GetTicket(c echo.Context) error {
	doc, err := h.Store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "ticket store error"})
	}
	return c.HTML(http.StatusOK, doc)
}

func (h *TicketHandler) publish(ctx context.Context, out model.RenderedTicket, items int) {
	if h.Events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	ev := queue.TicketGeneratedEvent{
		TicketNumber: out.Number,
		ItemCount:    items,
		Subtotal:     out.Subtotal.StringFixed(2),
		Tax:          out.Tax.StringFixed(2),
		Total:        out.Total.StringFixed(2),
		Location:     out.Location,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.Events.PublishTicketGenerated(ctx, ev); err != nil {
		h.Metrics.EventPublishFailures.Inc()
		h.Logger.Warn("ticket event not published", "ticket", out.Number, "err", err)
	}
}

func absoluteURL(c echo.Context, out model.RenderedTicket) string {
	loc := out.Location
	if loc == "" {
		loc = "ticket/" + out.Number
	}
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		return loc
	}
	return c.Scheme() + "://" + c.Request().Host + "/" + strings.TrimPrefix(loc, "/")
}
