package domain

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EnvelopeType tags a serialized notification so the consumer side can pick
// the right record shape.
type EnvelopeType string

const (
	EnvelopeCanceledOrder       EnvelopeType = "canceled_order_report"
	EnvelopePizzeriaStopSales   EnvelopeType = "pizzeria_stop_sales"
	EnvelopeStreetStopSales     EnvelopeType = "street_stop_sales"
	EnvelopeSectorStopSales     EnvelopeType = "sector_stop_sales"
	EnvelopeIngredientStopSales EnvelopeType = "ingredients_stop_sales"
)

var knownEnvelopeTypes = map[EnvelopeType]struct{}{
	EnvelopeCanceledOrder:       {},
	EnvelopePizzeriaStopSales:   {},
	EnvelopeStreetStopSales:     {},
	EnvelopeSectorStopSales:     {},
	EnvelopeIngredientStopSales: {},
}

// ErrUnknownEnvelopeType marks an envelope whose tag is not one of the known
// report kinds. Such envelopes must be rejected whole, never partially
// processed.
var ErrUnknownEnvelopeType = errors.New("unknown envelope type")

// Envelope pairs a report kind tag with its serialized record.
type Envelope struct {
	Type EnvelopeType        `json:"type"`
	Data jsoniter.RawMessage `json:"data"`
}

// EncodeEnvelope serializes a record under the given tag.
func EncodeEnvelope(envelopeType EnvelopeType, record any) ([]byte, error) {
	if _, ok := knownEnvelopeTypes[envelopeType]; !ok {
		return nil, errors.Wrapf(ErrUnknownEnvelopeType, "%q", envelopeType)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling envelope data")
	}

	return json.Marshal(Envelope{Type: envelopeType, Data: data})
}

// DecodeEnvelope deserializes an envelope, rejecting unknown tags.
func DecodeEnvelope(payload []byte) (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, errors.Wrap(err, "unmarshaling envelope")
	}

	if _, ok := knownEnvelopeTypes[envelope.Type]; !ok {
		return nil, errors.Wrapf(ErrUnknownEnvelopeType, "%q", envelope.Type)
	}

	return &envelope, nil
}

// DecodeData unmarshals the envelope payload into the given record.
func (e *Envelope) DecodeData(record any) error {
	return errors.Wrapf(json.Unmarshal(e.Data, record), "decoding %q envelope data", e.Type)
}
