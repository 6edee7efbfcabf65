package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dujiao-next/bistro/internal/cart"
)

const forwardErrorBodyLimit = 512

// ForwardStatusError 订单接口返回非 2xx
type ForwardStatusError struct {
	StatusCode int
	Body       string
}

func (e *ForwardStatusError) Error() string {
	return fmt.Sprintf("order endpoint status %d: %s", e.StatusCode, e.Body)
}

func (e *ForwardStatusError) Unwrap() error {
	return ErrOrderForwardFailed
}

// Retryable 5xx 与 429 可重试，其余客户端错误重试无意义
func (e *ForwardStatusError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// OrderForwarder 将订单请求体转发到外部订单接口
type OrderForwarder struct {
	endpoint string
	client   *http.Client
}

// NewOrderForwarder 创建订单转发器
func NewOrderForwarder(endpoint string, timeout time.Duration) *OrderForwarder {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OrderForwarder{
		endpoint: strings.TrimSpace(endpoint),
		client:   &http.Client{Timeout: timeout},
	}
}

// Endpoint 订单接口地址
func (f *OrderForwarder) Endpoint() string {
	if f == nil {
		return ""
	}
	return f.endpoint
}

// Forward 以 JSON 提交订单，orderID 作为幂等键
func (f *OrderForwarder) Forward(ctx context.Context, orderID string, payload cart.OrderPayload) error {
	if f == nil || f.endpoint == "" {
		return fmt.Errorf("%w: endpoint not configured", ErrOrderForwardFailed)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOrderForwardFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if orderID != "" {
		req.Header.Set("Idempotency-Key", orderID)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOrderForwardFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, forwardErrorBodyLimit))
		return &ForwardStatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
