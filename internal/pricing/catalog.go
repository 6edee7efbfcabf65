package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// 参数展示类型
const (
	ParamTypeCheckboxes = "checkboxes"
	ParamTypeRadios     = "radios"
	ParamTypeSelect     = "select"
)

var (
	ErrCatalogIDEmpty        = errors.New("catalog id is empty")
	ErrOptionPriceNegative   = errors.New("option price is negative")
	ErrParamTypeInvalid      = errors.New("param type is invalid")
	ErrParamMultipleDefaults = errors.New("single choice param has multiple defaults")
)

// Option 参数下的单个可选项
type Option struct {
	Label   string          `json:"label"`
	Price   decimal.Decimal `json:"price"`
	Default bool            `json:"default,omitempty"`
}

// Param 商品可配置参数（如配料、酱料）
type Param struct {
	Label   string            `json:"label"`
	Type    string            `json:"type"`
	Options map[string]Option `json:"options"`
}

// Catalog 参数目录 paramID -> Param
type Catalog map[string]Param

// Validate 校验参数目录
func (c Catalog) Validate() error {
	for paramID, param := range c {
		if strings.TrimSpace(paramID) == "" {
			return ErrCatalogIDEmpty
		}
		switch param.Type {
		case "", ParamTypeCheckboxes, ParamTypeRadios, ParamTypeSelect:
		default:
			return fmt.Errorf("%w: %s", ErrParamTypeInvalid, param.Type)
		}
		defaults := 0
		for optionID, option := range param.Options {
			if strings.TrimSpace(optionID) == "" {
				return fmt.Errorf("%w: param %s", ErrCatalogIDEmpty, paramID)
			}
			if option.Price.IsNegative() {
				return fmt.Errorf("%w: %s.%s", ErrOptionPriceNegative, paramID, optionID)
			}
			if option.Default {
				defaults++
			}
		}
		if param.singleChoice() && defaults > 1 {
			return fmt.Errorf("%w: %s", ErrParamMultipleDefaults, paramID)
		}
	}
	return nil
}

// HasOption 判断目录中是否存在该选项
func (c Catalog) HasOption(paramID, optionID string) bool {
	param, ok := c[paramID]
	if !ok {
		return false
	}
	_, ok = param.Options[optionID]
	return ok
}

func (p Param) singleChoice() bool {
	return p.Type == ParamTypeRadios || p.Type == ParamTypeSelect
}
