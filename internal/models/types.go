package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/dujiao-next/bistro/internal/pricing"
)

// StringArray 字符串数组类型，用于存储 images 等
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	bytes, err := scanJSONBytes(value)
	if err != nil || bytes == nil {
		*s = StringArray{}
		return err
	}
	return json.Unmarshal(bytes, s)
}

// ProductParams 商品参数目录（JSON 存储）
type ProductParams pricing.Catalog

// Catalog 转为计价目录
func (p ProductParams) Catalog() pricing.Catalog {
	return pricing.Catalog(p)
}

// Value 实现 driver.Valuer 接口
func (p ProductParams) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(body), nil
}

// Scan 实现 sql.Scanner 接口
func (p *ProductParams) Scan(value interface{}) error {
	bytes, err := scanJSONBytes(value)
	if err != nil || bytes == nil {
		*p = ProductParams{}
		return err
	}
	return json.Unmarshal(bytes, p)
}

// sqlite 驱动返回 string，postgres 返回 []byte
func scanJSONBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", value)
	}
}
