// Package amount 数量选择器：解析原始输入并限制在 [Min, Max] 区间内。
package amount

import (
	"strings"

	EventBus "github.com/asaskevich/EventBus"
	"github.com/spf13/cast"
)

const topicUpdated = "amount:updated"

// 数量步进操作
const (
	StepIncrease = "increase"
	StepDecrease = "decrease"
)

const (
	DefaultValue = 1
	DefaultMin   = 1
	DefaultMax   = 9
)

// Settings 数量选择器配置
type Settings struct {
	DefaultValue int `json:"default_value"`
	Min          int `json:"min"`
	Max          int `json:"max"`
}

// Normalize 补齐默认值
func (s Settings) Normalize() Settings {
	if s.Min <= 0 {
		s.Min = DefaultMin
	}
	if s.Max <= 0 {
		s.Max = DefaultMax
	}
	if s.Max < s.Min {
		s.Max = s.Min
	}
	if s.DefaultValue == 0 {
		s.DefaultValue = DefaultValue
	}
	s.DefaultValue = s.Clamp(s.DefaultValue)
	return s
}

// Clamp 限制在区间内
func (s Settings) Clamp(value int) int {
	if value > s.Max {
		return s.Max
	}
	if value < s.Min {
		return s.Min
	}
	return value
}

// Widget 数量选择器
type Widget struct {
	settings Settings
	value    int
	bus      EventBus.Bus
}

// NewWidget 创建数量选择器
func NewWidget(settings Settings) *Widget {
	settings = settings.Normalize()
	return &Widget{
		settings: settings,
		value:    settings.DefaultValue,
		bus:      EventBus.New(),
	}
}

// Value 当前数量
func (w *Widget) Value() int {
	return w.value
}

// Settings 当前配置
func (w *Widget) Settings() Settings {
	return w.settings
}

// SetValue 设置数量；无法解析的输入保留原值，每次调用都会通知订阅者
func (w *Widget) SetValue(raw interface{}) {
	if newValue, ok := parseAmount(raw); ok && newValue != w.value {
		w.value = w.settings.Clamp(newValue)
	}
	w.announce()
}

// Increase 数量 +1
func (w *Widget) Increase() {
	w.SetValue(w.value + 1)
}

// Decrease 数量 -1
func (w *Widget) Decrease() {
	w.SetValue(w.value - 1)
}

// Step 按操作名调整数量（对应 +/- 按钮），未知操作返回 false 且不修改数量
func (w *Widget) Step(op string) bool {
	switch strings.ToLower(strings.TrimSpace(op)) {
	case StepIncrease:
		w.Increase()
	case StepDecrease:
		w.Decrease()
	default:
		return false
	}
	return true
}

// Subscribe 注册数量变化回调
func (w *Widget) Subscribe(fn func(value int)) error {
	return w.bus.Subscribe(topicUpdated, fn)
}

func parseAmount(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case nil, bool:
		return 0, false
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return 0, false
		}
		raw = trimLeadingZeros(text)
	}
	value, err := cast.ToIntE(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

// trimLeadingZeros 按十进制解析，避免 "08" 被当作八进制
func trimLeadingZeros(text string) string {
	sign := ""
	if text[0] == '-' || text[0] == '+' {
		sign, text = text[:1], text[1:]
	}
	digits := strings.TrimLeft(text, "0")
	if digits == "" && text != "" {
		digits = "0"
	}
	return sign + digits
}

func (w *Widget) announce() {
	w.bus.Publish(topicUpdated, w.value)
}
