package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	validatorV10 "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

var (
	installOnce sync.Once
	installUni  *ut.UniversalTranslator
	installErr  error
)

// Install replaces gin's binding validator and returns the en/zh translators.
// Install 替换 gin 的绑定校验器，并注册中英文翻译
func Install() (*ut.UniversalTranslator, error) {
	installOnce.Do(func() {
		customValidator := NewCustomValidator()
		binding.Validator = customValidator

		validate, ok := customValidator.Engine().(*validatorV10.Validate)
		if !ok {
			return
		}

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		uni := ut.New(en.New(), en.New(), zh.New())

		zhTran, _ := uni.GetTranslator("zh")
		enTran, _ := uni.GetTranslator("en")

		if installErr = zh_translations.RegisterDefaultTranslations(validate, zhTran); installErr != nil {
			return
		}
		if installErr = en_translations.RegisterDefaultTranslations(validate, enTran); installErr != nil {
			return
		}
		installErr = registerNotBlankTranslation(validate, enTran, zhTran)
		installUni = uni
	})
	return installUni, installErr
}

func registerNotBlankTranslation(validate *validatorV10.Validate, enTran, zhTran ut.Translator) error {
	for trans, text := range map[ut.Translator]string{
		enTran: "{0} cannot be blank",
		zhTran: "{0}不能为空白",
	} {
		tr := trans
		err := validate.RegisterTranslation("notblank", tr, func(u ut.Translator) error {
			return u.Add("notblank", text, true)
		}, func(u ut.Translator, fe validatorV10.FieldError) string {
			t, _ := u.T("notblank", fe.Field())
			return t
		})
		if err != nil {
			return err
		}
	}
	return nil
}
