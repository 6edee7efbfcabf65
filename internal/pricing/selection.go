package pricing

import (
	"encoding/json"
	"sort"

	"github.com/spf13/cast"
)

// Selection 用户当前选择 paramID -> optionID 集合
type Selection map[string]map[string]struct{}

// NewSelection 从 paramID -> optionID 列表构建选择
func NewSelection(values map[string][]string) Selection {
	s := make(Selection, len(values))
	for paramID, optionIDs := range values {
		for _, optionID := range optionIDs {
			s.Add(paramID, optionID)
		}
	}
	return s
}

// Has 判断选项是否被选中
func (s Selection) Has(paramID, optionID string) bool {
	if s == nil {
		return false
	}
	options, ok := s[paramID]
	if !ok {
		return false
	}
	_, ok = options[optionID]
	return ok
}

// Add 选中选项
func (s Selection) Add(paramID, optionID string) {
	options, ok := s[paramID]
	if !ok {
		options = make(map[string]struct{})
		s[paramID] = options
	}
	options[optionID] = struct{}{}
}

// Remove 取消选中
func (s Selection) Remove(paramID, optionID string) {
	options, ok := s[paramID]
	if !ok {
		return
	}
	delete(options, optionID)
	if len(options) == 0 {
		delete(s, paramID)
	}
}

// Clone 深拷贝
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for paramID, options := range s {
		for optionID := range options {
			out.Add(paramID, optionID)
		}
	}
	return out
}

// Values 返回排序后的 paramID -> optionID 列表
func (s Selection) Values() map[string][]string {
	out := make(map[string][]string, len(s))
	for paramID, options := range s {
		ids := make([]string, 0, len(options))
		for optionID := range options {
			ids = append(ids, optionID)
		}
		sort.Strings(ids)
		out[paramID] = ids
	}
	return out
}

// MarshalJSON 输出为 {"toppings":["olives"]} 形式
func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON 接受列表或单个字符串（单选参数）
func (s *Selection) UnmarshalJSON(b []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Selection, len(raw))
	for paramID, value := range raw {
		if value == nil {
			continue
		}
		if text, ok := value.(string); ok {
			value = []string{text}
		}
		optionIDs, err := cast.ToStringSliceE(value)
		if err != nil {
			return err
		}
		for _, optionID := range optionIDs {
			out.Add(paramID, optionID)
		}
	}
	*s = out
	return nil
}

// DefaultSelection 所有默认选项被选中的初始状态
func DefaultSelection(catalog Catalog) Selection {
	s := make(Selection)
	for paramID, param := range catalog {
		for optionID, option := range param.Options {
			if option.Default {
				s.Add(paramID, optionID)
			}
		}
	}
	return s
}

// NormalizeSelection 丢弃目录中不存在的参数与选项
func NormalizeSelection(catalog Catalog, selection Selection) (Selection, bool) {
	out := make(Selection, len(selection))
	dropped := false
	for paramID, options := range selection {
		for optionID := range options {
			if !catalog.HasOption(paramID, optionID) {
				dropped = true
				continue
			}
			out.Add(paramID, optionID)
		}
	}
	return out, dropped
}
