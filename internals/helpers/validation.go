package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap ubah error validator jadi peta field -> pesan untuk
// JsonValidationError. Error non-validator masuk ke key "_".
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = []string{err.Error()}
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out[field] = append(out[field], msg)
	}
	return out
}
