package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocaleZH = "zh-CN"
	LocaleEN = "en-US"

	// DefaultLocale 未能识别语言时使用
	DefaultLocale = LocaleZH
)

var (
	supportedLocales = []string{LocaleZH, LocaleEN}
	matcher          = language.NewMatcher([]language.Tag{
		language.MustParse(LocaleZH),
		language.MustParse(LocaleEN),
	})
)

// ResolveLocale 依次读取 lang 查询参数与 Accept-Language 请求头
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return NormalizeLocale(lang)
	}
	if c.Request == nil {
		return DefaultLocale
	}
	return NormalizeLocale(c.GetHeader("Accept-Language"))
}

// NormalizeLocale 将任意语言标签匹配到受支持的语言
func NormalizeLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supportedLocales[index]
}

// T 翻译消息，缺失时回退到默认语言，再回退到 key 本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化消息
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
