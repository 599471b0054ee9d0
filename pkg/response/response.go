package response

import (
	"net/http"

	"github.com/alimikegami/shopigo/internal/dto"
	"github.com/alimikegami/shopigo/pkg/errs"
	"github.com/labstack/echo/v4"
)

func WriteSuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func WriteCreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func WriteMessageResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// WriteErrorResponse renders err as {"message": ...} with the status mapped
// by errs. Errors that are not sentinels are reported generically.
func WriteErrorResponse(c echo.Context, err error) error {
	err = errs.Resolve(err)

	return c.JSON(errs.GetErrorStatusCode(err), dto.MessageResponse{Message: err.Error()})
}
