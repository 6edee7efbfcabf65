package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Product 菜单商品表
type Product struct {
	ID          string         `gorm:"primarykey;type:varchar(64)" json:"id"`                     // 商品标识（如 pizza）
	Name        string         `gorm:"type:varchar(120);not null" json:"name"`                    // 名称
	Class       string         `gorm:"type:varchar(64)" json:"class"`                             // 卡片样式类
	Description string         `gorm:"type:text" json:"description"`                              // 描述
	Images      StringArray    `gorm:"type:json" json:"images"`                                   // 图片数组
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`        // 基础价（已包含默认选项）
	Params      ProductParams  `gorm:"type:json" json:"params"`                                   // 参数目录
	IsActive    bool           `gorm:"not null;index" json:"is_active"`                           // 是否上架
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                         // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// UnmarshalJSON 解析商品数据，未提供 is_active 时默认上架
func (p *Product) UnmarshalJSON(data []byte) error {
	type productAlias Product
	alias := productAlias{IsActive: true}
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = Product(alias)
	return nil
}
