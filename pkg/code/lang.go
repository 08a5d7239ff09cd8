package code

import (
	"errors"
	"reflect"
	"sync"
)

// lang type, used to store English and Chinese text
// lang 类型，用来存储英文和中文文本
type lang struct {
	en    string // English // 英文
	zh_cn string // Chinese // 中文
}

const FALLBACK_LNG = "en"

var (
	lngMu sync.RWMutex
	lng   = FALLBACK_LNG
)

// GetMessage returns the message in the global default language
// GetMessage 返回全局默认语言的消息
func (l lang) GetMessage() string {
	return l.In(GetGlobalDefaultLang())
}

// In returns the message in the given language, falling back to English
// In 返回指定语言的消息，不存在时回退到英文
func (l lang) In(language string) string {
	val := reflect.ValueOf(l)
	if language != "" {
		if field := val.FieldByName(language); field.IsValid() && field.String() != "" {
			return field.String()
		}
	}
	return l.en
}

// GetSupportedLanguages returns all languages supported by the lang type
// GetSupportedLanguages 函数返回 lang 类型支持的所有语言
func GetSupportedLanguages() []string {
	typ := reflect.TypeOf(lang{})
	languages := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		languages = append(languages, typ.Field(i).Name)
	}
	return languages
}

// SetGlobalDefaultLang sets the global default language
// 设置全局默认语言
func SetGlobalDefaultLang(language string) error {
	for _, l := range GetSupportedLanguages() {
		if language == l {
			lngMu.Lock()
			lng = language
			lngMu.Unlock()
			return nil
		}
	}
	lngMu.Lock()
	lng = FALLBACK_LNG
	lngMu.Unlock()
	return errors.New("unsupported language type, set defaulting to " + FALLBACK_LNG)
}

// GetGlobalDefaultLang gets the global default language
// 获取全局默认语言
func GetGlobalDefaultLang() string {
	lngMu.RLock()
	defer lngMu.RUnlock()
	return lng
}
