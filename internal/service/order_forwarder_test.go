package service

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dujiao-next/bistro/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderForwarderStatusErrors(t *testing.T) {
	cases := []struct {
		status    int
		retryable bool
	}{
		{status: http.StatusInternalServerError, retryable: true},
		{status: http.StatusTooManyRequests, retryable: true},
		{status: http.StatusBadRequest, retryable: false},
	}
	for _, tc := range cases {
		server, received := newCaptureServer(t, tc.status)
		forwarder := NewOrderForwarder(server.URL, time.Second)

		err := forwarder.Forward(t.Context(), "order-1", cart.OrderPayload{Products: []cart.OrderProduct{}})
		<-received
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOrderForwardFailed)

		var statusErr *ForwardStatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, tc.status, statusErr.StatusCode)
		assert.Equal(t, tc.retryable, statusErr.Retryable())
	}
}

func TestOrderForwarderSuccess(t *testing.T) {
	server, received := newCaptureServer(t, http.StatusOK)
	forwarder := NewOrderForwarder(server.URL, time.Second)

	require.NoError(t, forwarder.Forward(t.Context(), "", cart.OrderPayload{Address: "a", Phone: "b"}))
	req := <-received
	assert.Empty(t, req.idempotencyKey)
	assert.Contains(t, string(req.body), `"address":"a"`)
}

func TestOrderForwarderWithoutEndpoint(t *testing.T) {
	err := NewOrderForwarder(" ", 0).Forward(t.Context(), "order-1", cart.OrderPayload{})
	assert.ErrorIs(t, err, ErrOrderForwardFailed)
}
