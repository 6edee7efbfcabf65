package constants

// 订单提交状态常量
const (
	OrderSubmitQueued    = "queued"
	OrderSubmitForwarded = "forwarded"
)

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 队列任务类型常量
const (
	TaskOrderSubmit = "order:submit"
)
