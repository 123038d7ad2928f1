package kafka

import (
	"testing"
	"time"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToKafkaMessages(t *testing.T) {
	orderID := kernel.NewUUID()
	msgID := kernel.NewUUID()
	at := time.Date(2026, 10, 15, 2, 0, 0, 0, time.UTC)

	out := toKafkaMessages([]ports.OutboxMessage{{
		ID:          msgID,
		AggregateID: orderID,
		EventType:   "order.cancelled",
		Payload:     []byte(`{"orderId":"x"}`),
		OccurredAt:  at,
	}})

	require.Len(t, out, 1)
	assert.Equal(t, []byte(orderID.String()), out[0].Key)
	assert.JSONEq(t, `{"orderId":"x"}`, string(out[0].Value))
	assert.Equal(t, at, out[0].Time)
	require.Len(t, out[0].Headers, 2)
	assert.Equal(t, HeaderEventType, out[0].Headers[0].Key)
	assert.Equal(t, "order.cancelled", string(out[0].Headers[0].Value))
	assert.Equal(t, msgID.String(), string(out[0].Headers[1].Value))
}

func TestOrderEventPublisher_PublishNothing(t *testing.T) {
	p := NewOrderEventPublisher([]string{"localhost:1"}, "orders")
	defer func() { _ = p.Close() }()

	assert.NoError(t, p.Publish(t.Context()))
}
