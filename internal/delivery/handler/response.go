package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"contact-service/internal/shared"
)

// Response represents a standard API response format
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Code    int         `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondData(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, Response{
		Status: "success",
		Code:   statusCode,
		Data:   data,
	})
}

func respondError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

// respondServiceError maps the error taxonomy onto HTTP statuses. Anything
// unrecognized is treated as a failed dependency: logged and surfaced as a
// 500 without detail.
func respondServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, shared.ErrUnauthorized):
		return respondError(c, http.StatusUnauthorized, shared.ErrUnauthorized.Error())
	case errors.Is(err, shared.ErrNotFound):
		return respondError(c, http.StatusNotFound, "contact not found")
	case errors.Is(err, shared.ErrInvalidInput):
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrAlreadyExists):
		return respondError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("request failed: %v", err)
		return respondError(c, http.StatusInternalServerError, shared.ErrDependency.Error())
	}
}
