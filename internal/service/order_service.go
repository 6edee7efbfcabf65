package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dujiao-next/bistro/internal/cart"
	"github.com/dujiao-next/bistro/internal/constants"
	"github.com/dujiao-next/bistro/internal/logger"
	"github.com/dujiao-next/bistro/internal/queue"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\-()\s]{6,20}$`)

// CheckoutInput 结账表单
type CheckoutInput struct {
	Address string `validate:"required"`
	Phone   string `validate:"required,phone"`
}

// OrderSubmitResult 订单提交结果
type OrderSubmitResult struct {
	OrderID string            `json:"order_id"`
	Status  string            `json:"status"`
	Order   cart.OrderPayload `json:"order"`
}

// OrderService 订单提交服务
type OrderService struct {
	carts          *CartService
	queueClient    *queue.Client
	forwarder      *OrderForwarder
	forwardTimeout time.Duration
	validate       *validator.Validate
	now            func() time.Time
}

// NewOrderService 创建订单服务
func NewOrderService(carts *CartService, queueClient *queue.Client, forwarder *OrderForwarder, forwardTimeout time.Duration) *OrderService {
	validate := validator.New()
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	if forwardTimeout <= 0 {
		forwardTimeout = 10 * time.Second
	}
	return &OrderService{
		carts:          carts,
		queueClient:    queueClient,
		forwarder:      forwarder,
		forwardTimeout: forwardTimeout,
		validate:       validate,
		now:            time.Now,
	}
}

// ValidateCheckout 校验结账表单
func (s *OrderService) ValidateCheckout(input CheckoutInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	switch fieldErrs[0].Field() {
	case "Address":
		return ErrOrderAddressRequired
	default:
		return ErrOrderPhoneInvalid
	}
}

// Submit 校验表单并提交购物车订单；队列可用时入队，否则直接异步转发
func (s *OrderService) Submit(ctx context.Context, cartID string, input CheckoutInput) (*OrderSubmitResult, error) {
	input.Address = strings.TrimSpace(input.Address)
	input.Phone = strings.TrimSpace(input.Phone)
	if err := s.ValidateCheckout(input); err != nil {
		return nil, err
	}

	payload, err := s.carts.BuildOrderPayload(ctx, cartID, input.Address, input.Phone)
	if err != nil {
		return nil, err
	}
	if payload.TotalNumber == 0 {
		return nil, ErrCartEmpty
	}

	orderID := uuid.NewString()
	result := &OrderSubmitResult{OrderID: orderID, Order: *payload}

	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueOrderSubmit(queue.OrderSubmitPayload{
			OrderID:     orderID,
			CartID:      cartID,
			Order:       *payload,
			SubmittedAt: s.now(),
		})
		if err != nil {
			logger.Errorw("order_submit_enqueue_failed", "order_id", orderID, "cart_id", cartID, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrQueueUnavailable, err)
		}
		logger.Infow("order_submit_enqueued", "order_id", orderID, "cart_id", cartID, "total_price", payload.TotalPrice.String())
		result.Status = constants.OrderSubmitQueued
		return result, nil
	}

	if s.forwarder == nil {
		return nil, ErrQueueUnavailable
	}
	go s.forwardDetached(orderID, cartID, *payload)
	result.Status = constants.OrderSubmitForwarded
	return result, nil
}

func (s *OrderService) forwardDetached(orderID, cartID string, payload cart.OrderPayload) {
	ctx, cancel := context.WithTimeout(context.Background(), s.forwardTimeout)
	defer cancel()
	if err := s.forwarder.Forward(ctx, orderID, payload); err != nil {
		logger.Warnw("order_forward_failed", "order_id", orderID, "cart_id", cartID, "error", err)
		return
	}
	logger.Infow("order_forwarded", "order_id", orderID, "cart_id", cartID, "endpoint", s.forwarder.Endpoint())
}
