package validation

import (
	"errors"
	"fmt"
)

// Kind различает виды ошибок валидации поля.
type Kind string

const (
	KindMissingRequired Kind = "missing_required" // обязательное поле не передано
	KindEmptyNotAllowed Kind = "empty_not_allowed"
	KindTypeMismatch    Kind = "type_mismatch"
	KindFormatMismatch  Kind = "format_mismatch"
)

// Error — ошибка валидации одного поля.
// Field указывает имя поля, Kind — вид нарушения.
type Error struct {
	Field   string
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// newError создает ошибку валидации с готовым сообщением.
func newError(field string, kind Kind, format string, args ...any) *Error {
	return &Error{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsError возвращает *Error из цепочки ошибок, если он там есть.
func AsError(err error) (*Error, bool) {
	var vErr *Error
	ok := errors.As(err, &vErr)
	return vErr, ok
}

// IsKind проверяет, что ошибка является ошибкой валидации указанного вида.
func IsKind(err error, kind Kind) bool {
	vErr, ok := AsError(err)
	return ok && vErr.Kind == kind
}
