package pricing

// ParamSnapshot 加入购物车时的参数快照
type ParamSnapshot struct {
	Label   string            `json:"label"`
	Options map[string]string `json:"options"` // optionID -> 选项名称，仅包含已选项
}

// ParamsSnapshot paramID -> 快照
type ParamsSnapshot map[string]ParamSnapshot

// SnapshotParams 生成购物车商品的参数摘要
func SnapshotParams(catalog Catalog, selection Selection) ParamsSnapshot {
	out := make(ParamsSnapshot, len(catalog))
	for paramID, param := range catalog {
		snapshot := ParamSnapshot{
			Label:   param.Label,
			Options: make(map[string]string),
		}
		for optionID, option := range param.Options {
			if selection.Has(paramID, optionID) {
				snapshot.Options[optionID] = option.Label
			}
		}
		out[paramID] = snapshot
	}
	return out
}
