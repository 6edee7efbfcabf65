package cache

import (
	"context"
	"strings"
)

const (
	menuProductsKey      = "menu:products"
	menuProductKeyPrefix = "menu:product:"
)

// MenuProductsKey 菜单列表缓存 key
func MenuProductsKey() string {
	return menuProductsKey
}

// MenuProductKey 单个商品缓存 key
func MenuProductKey(productID string) string {
	return menuProductKeyPrefix + strings.TrimSpace(productID)
}

// InvalidateMenu 清除菜单列表及指定商品的缓存
func InvalidateMenu(ctx context.Context, productIDs ...string) error {
	if !Enabled() {
		return nil
	}
	keys := make([]string, 0, len(productIDs)+1)
	keys = append(keys, buildKey(menuProductsKey))
	for _, id := range productIDs {
		if strings.TrimSpace(id) == "" {
			continue
		}
		keys = append(keys, buildKey(MenuProductKey(id)))
	}
	return redisClient.Del(ctx, keys...).Err()
}
