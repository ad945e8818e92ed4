package validation

import (
	"fmt"
	"strings"

	validatorengine "github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var engine = validatorengine.New()

// Errors ошибки валидации по полям, отдаются клиенту как есть
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

// IsEmpty строка без значимых символов считается пустой
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func normalize(s string) string {
	if IsEmpty(s) {
		return ""
	}
	return s
}

func isLength(s string, min, max int) bool {
	return engine.Var(s, fmt.Sprintf("min=%d,max=%d", min, max)) == nil
}

func isEmail(s string) bool {
	return engine.Var(s, "email") == nil
}

// isURL принимает как полные адреса, так и голые домены вида example.com
func isURL(s string) bool {
	return engine.Var(s, "url|fqdn") == nil
}

func isDate(s string) bool {
	return engine.Var(s, "datetime="+dateLayout) == nil
}

func result(errs Errors) (Errors, bool) {
	return errs, errs.Valid()
}
