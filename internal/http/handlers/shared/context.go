package shared

import (
	"strings"

	"github.com/dujiao-next/bistro/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPathParam 读取路径参数，为空时返回错误响应。
func GetPathParam(c *gin.Context, name, invalidKey string) (string, bool) {
	value := strings.TrimSpace(c.Param(name))
	if value == "" {
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
		return "", false
	}
	return value, true
}
