package broker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Envelope(t *testing.T) {
	body, err := encode(domain.EventPaymentPaid, domain.PaymentEvent{
		OrderID:  "o1",
		Amount:   "150.00",
		Currency: "SGD",
	})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(body, &env))

	assert.Equal(t, domain.EventPaymentPaid, env.Event)
	assert.Equal(t, envelopeVersion, env.Version)
	assert.False(t, env.OccurredAt.IsZero())
	assert.JSONEq(t, `{"order_id":"o1","payment_id":"","user_id":"","provider":"","amount":"150.00","currency":"SGD"}`, string(env.Data))
}

func TestEncode_UnsupportedPayload(t *testing.T) {
	_, err := encode(domain.EventOrderCompleted, make(chan int))

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.EventOrderCompleted)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher

	assert.NoError(t, p.Publish(context.Background(), domain.EventPaymentFailed, nil))
	assert.NoError(t, p.Close())
}
