package service

import (
	"sort"

	"github.com/dujiao-next/bistro/internal/amount"
	"github.com/dujiao-next/bistro/internal/cart"
	"github.com/dujiao-next/bistro/internal/pricing"
)

// ProductForm 单个商品的配置状态：选项 + 数量，任一变化都会重新计价
type ProductForm struct {
	product   *MenuProduct
	selection pricing.Selection
	amount    *amount.Widget
	quote     pricing.Quote
}

// NewProductForm 以默认选项与默认数量初始化
func NewProductForm(product *MenuProduct, settings amount.Settings) *ProductForm {
	form := &ProductForm{
		product:   product,
		selection: pricing.DefaultSelection(product.Params),
		amount:    amount.NewWidget(settings),
	}
	_ = form.amount.Subscribe(func(int) {
		form.Process()
	})
	form.Process()
	return form
}

// SetSelection 替换当前选择；包含目录外的选项时返回 ErrInvalidSelection 且保持原状态
func (f *ProductForm) SetSelection(selection pricing.Selection) error {
	normalized, dropped := pricing.NormalizeSelection(f.product.Params, selection)
	if dropped {
		return ErrInvalidSelection
	}
	for paramID, options := range normalized {
		param := f.product.Params[paramID]
		if param.Type != pricing.ParamTypeCheckboxes && len(options) > 1 {
			return ErrInvalidSelection
		}
	}
	f.selection = normalized
	f.Process()
	return nil
}

// Toggle 切换单个选项；单选参数切换时替换原选项
func (f *ProductForm) Toggle(paramID, optionID string) error {
	if !f.product.Params.HasOption(paramID, optionID) {
		return ErrInvalidSelection
	}
	param := f.product.Params[paramID]
	if param.Type == pricing.ParamTypeCheckboxes {
		if f.selection.Has(paramID, optionID) {
			f.selection.Remove(paramID, optionID)
		} else {
			f.selection.Add(paramID, optionID)
		}
	} else {
		delete(f.selection, paramID)
		f.selection.Add(paramID, optionID)
	}
	f.Process()
	return nil
}

// SetAmount 修改数量，数量组件通知后自动重新计价
func (f *ProductForm) SetAmount(raw interface{}) {
	f.amount.SetValue(raw)
}

// StepAmount 按 increase/decrease 调整数量，对应数量组件的 +/- 按钮
func (f *ProductForm) StepAmount(op string) error {
	if !f.amount.Step(op) {
		return ErrInvalidAmountStep
	}
	return nil
}

// Process 重新计算单价与总价
func (f *ProductForm) Process() pricing.Quote {
	base := f.product.Price.Decimal
	f.quote = pricing.Calculate(base, f.product.Params, f.selection, f.amount.Value())
	return f.quote
}

// Quote 最近一次计价结果
func (f *ProductForm) Quote() pricing.Quote {
	return f.quote
}

// Selection 当前选择（副本）
func (f *ProductForm) Selection() pricing.Selection {
	return f.selection.Clone()
}

// Params 购物车展示用的参数摘要
func (f *ProductForm) Params() pricing.ParamsSnapshot {
	return pricing.SnapshotParams(f.product.Params, f.selection)
}

// VisibleImages 已选中选项对应的图层类名，形如 toppings-olives
func (f *ProductForm) VisibleImages() []string {
	out := make([]string, 0)
	for paramID, optionIDs := range f.selection.Values() {
		for _, optionID := range optionIDs {
			out = append(out, paramID+"-"+optionID)
		}
	}
	sort.Strings(out)
	return out
}

// PrepareCartProduct 生成可加入购物车的商品项
func (f *ProductForm) PrepareCartProduct() *cart.LineItem {
	quote := f.Process()
	return cart.NewLineItem(
		f.product.ID,
		f.product.Name,
		quote.Amount,
		quote.PriceSingle,
		f.selection,
		f.Params(),
	)
}
