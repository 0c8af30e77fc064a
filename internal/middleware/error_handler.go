package middleware

import (
	"net/http"

	"careerPlatform/pkg/logger"

	jsonres "careerPlatform/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the global echo error handler. Handlers map their own
// service errors; anything that still reaches here is either an echo
// routing error or a bug.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	code := jsonres.CodeInternal
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch status {
		case http.StatusNotFound:
			code = jsonres.CodeInvalidQuery
			message = "Route not found"
		case http.StatusMethodNotAllowed:
			code = jsonres.CodeInvalidQuery
			message = "Method not allowed"
		default:
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}
	} else {
		logger.Error("unhandled error reached global handler", err)
	}

	if writeErr := c.JSON(status, jsonres.Error(code, message, nil)); writeErr != nil {
		logger.Error("failed to write error response", writeErr)
	}
}
