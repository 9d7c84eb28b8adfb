package handler

import (
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_translations "github.com/go-playground/validator/v10/translations/pt_BR"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes limita o corpo das requisições JSON
const maxBodyBytes = 1 << 20

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	translator    ut.Translator
)

// getValidator inicializa o validador com mensagens em português e nomes de
// campo vindos da tag json
func getValidator() (*validator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		locale := pt_BR.New()
		uni := ut.New(locale, locale)
		translator, _ = uni.GetTranslator("pt_BR")

		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "" {
				tag = fld.Tag.Get("query")
			}
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		if err := pt_translations.RegisterDefaultTranslations(validate, translator); err != nil {
			logrus.WithError(err).Warn("Não foi possível registrar as traduções do validador")
		}
	})
	return validate, translator
}

// validationDetails converte os erros do validador em campo -> mensagem
func validationDetails(err error) map[string]string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil
	}

	_, trans := getValidator()
	details := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		details[fe.Field()] = fe.Translate(trans)
	}
	return details
}

// decodeAndValidate lê o corpo JSON em dst e aplica as regras de validação.
// Em caso de erro a resposta já foi escrita e o retorno é false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	return validateStruct(w, dst)
}

func validateStruct(w http.ResponseWriter, value any) bool {
	v, _ := getValidator()
	if err := v.Struct(value); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dados da requisição inválidos", validationDetails(err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
