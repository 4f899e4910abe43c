package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/catalog-ticket-service/internal/metrics"
	"github.com/iliyamo/catalog-ticket-service/internal/qr"
)

// QREncoder turns text into an embeddable image payload.
type QREncoder interface {
	Encode(ctx context.Context, text string) (string, error)
}

// QRHandler serves POST /generate-qr.
type QRHandler struct {
	Encoder QREncoder
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewQRHandler panics when a dependency is nil.
func NewQRHandler(enc QREncoder, m *metrics.Metrics, log *slog.Logger) *QRHandler {
	if enc == nil || m == nil || log == nil {
		panic("nil dependency passed to NewQRHandler")
	}
	return &QRHandler{Encoder: enc, Metrics: m, Logger: log}
}

// GenerateQR encodes {"text": ...} and responds {"qrCode": "data:image/png;base64,..."}.
func (h *QRHandler) GenerateQR(c echo.Context) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.Bind(&body); err != nil {
		h.Metrics.QRCodes.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Text is required"})
	}
	uri, err := h.Encoder.Encode(c.Request().Context(), body.Text)
	if err != nil {
		if errors.Is(err, qr.ErrEmptyText) {
			h.Metrics.QRCodes.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Text is required"})
		}
		h.Metrics.QRCodes.WithLabelValues("error").Inc()
		h.Logger.Error("error generating QR code", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate QR code"})
	}
	h.Metrics.QRCodes.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, echo.Map{"qrCode": uri})
}
