package qr

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEmptyText(t *testing.T) {
	_, err := New().Encode(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestEncodeReturnsPNGDataURI(t *testing.T) {
	uri, err := New().Encode(context.Background(), "hello")
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(uri, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultWidth, img.Bounds().Dy())

	// corner pixel sits in the quiet zone
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r&g&b)
}

func TestEncodeDeterministic(t *testing.T) {
	e := New()
	a, err := e.Encode(context.Background(), "http://localhost:3001/tickets/ticket-T1.html")
	require.NoError(t, err)
	b, err := e.Encode(context.Background(), "http://localhost:3001/tickets/ticket-T1.html")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncodeTooLong(t *testing.T) {
	_, err := New().Encode(context.Background(), strings.Repeat("x", 4000))
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestEncodeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Encode(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}
