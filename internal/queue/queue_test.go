package queue

import (
	"errors"
	"testing"
	"time"

	"github.com/dujiao-next/bistro/internal/cart"
	"github.com/dujiao-next/bistro/internal/config"
	"github.com/dujiao-next/bistro/internal/constants"
	"github.com/dujiao-next/bistro/internal/models"
)

func TestDisabledClientRejectsEnqueue(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false}, 3)
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	err = client.EnqueueOrderSubmit(OrderSubmitPayload{OrderID: "o-1"})
	if !errors.Is(err, ErrQueueDisabled) {
		t.Fatalf("want ErrQueueDisabled got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close disabled client failed: %v", err)
	}
}

func TestOrderSubmitTaskRoundTrip(t *testing.T) {
	payload := OrderSubmitPayload{
		OrderID: "o-1",
		CartID:  "c-1",
		Order: cart.OrderPayload{
			Address:     "Main st. 1",
			Phone:       "+1 555 0100",
			TotalNumber: 2,
			TotalPrice:  models.NewMoneyFromInt(64),
			Products:    []cart.OrderProduct{},
		},
		SubmittedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	task, err := NewOrderSubmitTask(payload)
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != constants.TaskOrderSubmit {
		t.Fatalf("task type want %s got %s", constants.TaskOrderSubmit, task.Type())
	}
	got, err := ParseOrderSubmitPayload(task)
	if err != nil {
		t.Fatalf("parse payload failed: %v", err)
	}
	if got.OrderID != "o-1" || got.CartID != "c-1" || got.Order.Address != "Main st. 1" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.Order.TotalPrice.String() != "64.00" {
		t.Fatalf("total price want 64.00 got %s", got.Order.TotalPrice.String())
	}
	if !got.SubmittedAt.Equal(payload.SubmittedAt) {
		t.Fatalf("submitted_at mismatch: %s", got.SubmittedAt)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(nil)
	if opt.Addr != "127.0.0.1:6379" {
		t.Fatalf("unexpected addr: %s", opt.Addr)
	}
	if cfg.Concurrency != 10 {
		t.Fatalf("concurrency want 10 got %d", cfg.Concurrency)
	}
	if cfg.Queues[constants.QueueCritical] != 2 || cfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("unexpected queues: %v", cfg.Queues)
	}
}
