package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON lê o corpo em dst e aplica as tags validate. Em caso de falha já
// responde 400 e devolve false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				details[fe.Field()] = fieldMessage(fe)
			}
			WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", details)
			return false
		}
		WriteError(w, http.StatusBadRequest, "VALIDATION", "payload inválido", nil)
		return false
	}
	return true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "obrigatório"
	case "email":
		return "email inválido"
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "max":
		return "máximo de " + fe.Param() + " caracteres"
	case "datetime":
		return "formato esperado " + fe.Param()
	}
	return "inválido"
}
