package domain

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestEncodeEnvelope(t *testing.T) {
	rejectedAt := time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)
	order := &CanceledOrder{
		Department: "москва 4-1",
		RejectedAt: &rejectedAt,
		No:         "42-5",
		Type:       "Delivery",
		Price:      1234,
		UUID:       "abc123",
	}

	payload, err := EncodeEnvelope(EnvelopeCanceledOrder, order)
	assert.NoError(t, err)

	envelope, err := DecodeEnvelope(payload)
	assert.NoError(t, err)
	assert.Equal(t, EnvelopeCanceledOrder, envelope.Type)

	var decoded CanceledOrder
	assert.NoError(t, envelope.DecodeData(&decoded))
	assert.Equal(t, order.Department, decoded.Department)
	assert.Equal(t, order.No, decoded.No)
	assert.Equal(t, order.Price, decoded.Price)
	assert.Equal(t, order.UUID, decoded.UUID)
	assert.True(t, decoded.Confirmed())
}

func TestEncodeEnvelopeRejectsUnknownType(t *testing.T) {
	_, err := EncodeEnvelope(EnvelopeType("weather_report"), struct{}{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEnvelopeType))
}

func TestDecodeEnvelopeRejectsUnknownType(t *testing.T) {
	_, err := DecodeEnvelope([]byte(`{"type":"weather_report","data":{}}`))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEnvelopeType))
}

func TestDecodeEnvelopeRejectsMalformedPayload(t *testing.T) {
	_, err := DecodeEnvelope([]byte(`not json`))
	assert.Error(t, err)
}
