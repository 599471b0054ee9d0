package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	testCases := []struct {
		Name   string
		Err    error
		Status int
	}{
		{Name: "missing fields", Err: ErrMissingFields, Status: http.StatusBadRequest},
		{Name: "invalid body", Err: ErrInvalidBody, Status: http.StatusBadRequest},
		{Name: "not found", Err: ErrProductNotFound, Status: http.StatusNotFound},
		{Name: "wrapped not found", Err: fmt.Errorf("find product: %w", ErrProductNotFound), Status: http.StatusNotFound},
		{Name: "delete failed", Err: ErrDeleteFailed, Status: http.StatusInternalServerError},
		{Name: "internal", Err: ErrInternalServer, Status: http.StatusInternalServerError},
		{Name: "unknown", Err: errors.New("connection reset by peer"), Status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Status, GetErrorStatusCode(tc.Err))
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, ErrMissingFields, Resolve(ErrMissingFields))
	assert.Equal(t, ErrProductNotFound, Resolve(fmt.Errorf("lookup: %w", ErrProductNotFound)))
	assert.Equal(t, ErrInternalServer, Resolve(errors.New("server selection timeout")))
}

func TestResolveOrder(t *testing.T) {
	both := errors.Join(ErrDeleteFailed, ErrProductNotFound)

	for i := 0; i < 100; i++ {
		assert.Equal(t, ErrProductNotFound, Resolve(both))
	}
	assert.Equal(t, ErrMissingFields, Resolve(fmt.Errorf("%w: %w", ErrInvalidBody, ErrMissingFields)))
}

func TestSentinelsAreMapped(t *testing.T) {
	assert.Len(t, sentinels, len(errorMap))
	for _, sentinel := range sentinels {
		assert.Contains(t, errorMap, sentinel)
	}
}
