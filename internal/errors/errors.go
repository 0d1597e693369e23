package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Validation reports every missing field, comma-joined, in the order the
// fields are declared for the operation.
func Validation(missingFields []string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Message:    "invalid " + strings.Join(missingFields, ", "),
		StatusCode: http.StatusBadRequest,
	}
}

func NotFound(entityKind, id string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Message:    fmt.Sprintf("no %s found associated with id %s", entityKind, id),
		StatusCode: http.StatusNotFound,
	}
}

// Forbidden carries a fixed message so a failed password check never reveals
// whether the id existed.
func Forbidden() *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: "incorrect password", StatusCode: http.StatusForbidden}
}

func statusIs(err error, code int) bool {
	e, ok := err.(*ErrorWithStatusCode)
	return ok && e.StatusCode == code
}

func IsValidation(err error) bool {
	return statusIs(err, http.StatusBadRequest)
}

func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}
