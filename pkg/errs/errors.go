package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer  = errors.New("Internal server error")
	ErrMissingFields   = errors.New("Missing required fields")
	ErrInvalidBody     = errors.New("Invalid request body")
	ErrProductNotFound = errors.New("Product not found")
	ErrDeleteFailed    = errors.New("Delete failed")
)

// sentinels is the order Resolve checks wrapped errors in.
var sentinels = []error{
	ErrProductNotFound,
	ErrMissingFields,
	ErrInvalidBody,
	ErrDeleteFailed,
	ErrInternalServer,
}

var errorMap = map[error]int{
	ErrInternalServer:  ErrStatusInternalServer,
	ErrMissingFields:   ErrStatusClient,
	ErrInvalidBody:     ErrStatusClient,
	ErrProductNotFound: ErrStatusNotFound,
	ErrDeleteFailed:    ErrStatusInternalServer,
}

// Resolve returns the sentinel err is, or wraps. Anything else resolves to
// ErrInternalServer so raw driver errors never reach a response body.
func Resolve(err error) error {
	if _, ok := errorMap[err]; ok {
		return err
	}

	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	return ErrInternalServer
}

func GetErrorStatusCode(err error) int {
	return errorMap[Resolve(err)]
}
