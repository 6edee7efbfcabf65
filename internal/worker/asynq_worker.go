package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/dujiao-next/bistro/internal/logger"
	"github.com/dujiao-next/bistro/internal/provider"
	"github.com/dujiao-next/bistro/internal/queue"
	"github.com/dujiao-next/bistro/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderSubmit, c.handleOrderSubmit)
}

func (c *Consumer) handleOrderSubmit(ctx context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || task == nil {
		logger.Debugw("worker_order_submit_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderSubmitPayload(task)
	if err != nil {
		logger.Warnw("worker_order_submit_unmarshal_failed", "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if payload.OrderID == "" || len(payload.Order.Products) == 0 {
		logger.Debugw("worker_order_submit_skip_invalid_payload", "order_id", payload.OrderID, "cart_id", payload.CartID)
		return nil
	}
	if c.OrderForwarder == nil {
		logger.Warnw("worker_order_submit_skip_forwarder_nil", "order_id", payload.OrderID)
		return nil
	}

	if err := c.OrderForwarder.Forward(ctx, payload.OrderID, payload.Order); err != nil {
		var statusErr *service.ForwardStatusError
		if errors.As(err, &statusErr) && !statusErr.Retryable() {
			logger.Warnw("worker_order_submit_rejected",
				"order_id", payload.OrderID,
				"status_code", statusErr.StatusCode,
				"error", err,
			)
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		logger.Warnw("worker_order_submit_forward_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	logger.Infow("worker_order_submit_forwarded",
		"order_id", payload.OrderID,
		"cart_id", payload.CartID,
		"total_price", payload.Order.TotalPrice.String(),
		"submitted_at", payload.SubmittedAt,
	)
	return nil
}
