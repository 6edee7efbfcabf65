package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dujiao-next/bistro/internal/http/response"
	"github.com/dujiao-next/bistro/internal/i18n"
	"github.com/dujiao-next/bistro/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	BlockSeconds  int
	MessageKey    string
}

var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local block = tonumber(ARGV[3])
if block > 0 and current == tonumber(ARGV[2]) + 1 then
	redis.call("EXPIRE", KEYS[1], block)
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimitMiddleware Redis 频率限制中间件，超限后返回 429 并带 Retry-After
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || rule.WindowSeconds <= 0 || rule.MaxRequests <= 0 {
			c.Next()
			return
		}

		key := rule.buildKey(c, keyFunc)
		count, ttlSeconds, err := evalRateLimit(c, client, key, rule)
		if err != nil {
			logger.Warnw("rate_limit_eval_failed", "key", key, "error", err)
			msg := i18n.T(i18n.ResolveLocale(c), "error.rate_limit_unavailable")
			response.Error(c, response.CodeInternal, msg)
			c.Abort()
			return
		}
		if count <= int64(rule.MaxRequests) {
			c.Next()
			return
		}

		waitSeconds := rule.waitSeconds(ttlSeconds)
		msgKey := strings.TrimSpace(rule.MessageKey)
		if msgKey == "" {
			msgKey = "error.rate_limited"
		}
		c.Header("Retry-After", strconv.Itoa(waitSeconds))
		msg := i18n.Sprintf(i18n.ResolveLocale(c), msgKey, waitSeconds)
		response.Error(c, response.CodeTooManyRequests, msg)
		c.Abort()
	}
}

func (rule RateLimitRule) buildKey(c *gin.Context, keyFunc RateLimitKeyFunc) string {
	key := ""
	if keyFunc != nil {
		key = strings.TrimSpace(keyFunc(c))
	}
	if key == "" {
		key = c.ClientIP()
	}
	if rule.Prefix != "" {
		key = fmt.Sprintf("%s:%s", rule.Prefix, key)
	}
	return key
}

func (rule RateLimitRule) waitSeconds(ttlSeconds int64) int {
	wait := int(ttlSeconds)
	if wait < 1 {
		wait = rule.BlockSeconds
	}
	if wait < 1 {
		wait = rule.WindowSeconds
	}
	if wait < 1 {
		wait = 1
	}
	return wait
}

func evalRateLimit(c *gin.Context, client *redis.Client, key string, rule RateLimitRule) (int64, int64, error) {
	result, err := rateLimitScript.Run(c.Request.Context(), client, []string{key},
		rule.WindowSeconds, rule.MaxRequests, rule.BlockSeconds).Result()
	if err != nil {
		return 0, 0, err
	}
	values, ok := result.([]interface{})
	if !ok || len(values) < 2 {
		return 0, 0, fmt.Errorf("unexpected rate limit result: %v", result)
	}
	count, err := cast.ToInt64E(values[0])
	if err != nil {
		return 0, 0, err
	}
	return count, cast.ToInt64(values[1]), nil
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}
