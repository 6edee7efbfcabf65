package queue

import (
	"encoding/json"
	"time"

	"github.com/dujiao-next/bistro/internal/cart"
	"github.com/dujiao-next/bistro/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderSubmit 订单转发任务
	TaskOrderSubmit = constants.TaskOrderSubmit
)

// OrderSubmitPayload 订单转发任务载荷
type OrderSubmitPayload struct {
	OrderID     string            `json:"order_id"`
	CartID      string            `json:"cart_id"`
	Order       cart.OrderPayload `json:"order"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// NewOrderSubmitTask 创建订单转发任务
func NewOrderSubmitTask(payload OrderSubmitPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderSubmit, body), nil
}

// ParseOrderSubmitPayload 解析订单转发任务载荷
func ParseOrderSubmitPayload(task *asynq.Task) (OrderSubmitPayload, error) {
	var payload OrderSubmitPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
