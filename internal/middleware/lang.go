package middleware

import (
	"strings"

	"github.com/haierkeys/quicknote/pkg/code"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// LangKey Context 中存储语言的键，pkg/app 响应按此语言输出消息
const LangKey = "lang"

// LangWithTranslator 创建带翻译器的语言中间件（支持依赖注入）
func LangWithTranslator(uni *ut.UniversalTranslator) gin.HandlerFunc {

	return func(c *gin.Context) {

		var lang string

		if s, exist := c.GetQuery("lang"); exist {
			lang = s
		} else if s = c.GetHeader("lang"); len(s) != 0 {
			lang = s
		} else if s = c.GetHeader("Accept-Language"); len(s) != 0 {
			lang = strings.SplitN(strings.SplitN(s, ",", 2)[0], ";", 2)[0]
		}

		lang = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "-", "_"))
		if lang == "" {
			lang = code.GetGlobalDefaultLang()
		}

		transKey := "en"
		if strings.HasPrefix(lang, "zh") {
			transKey = "zh"
		}
		if uni != nil {
			if trans, found := uni.GetTranslator(transKey); found {
				c.Set("trans", trans)
			}
		}

		c.Set(LangKey, lang)

		c.Next()
	}
}
