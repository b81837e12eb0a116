package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contact-service/internal/application/services"
	"contact-service/internal/domain/entities"
	"contact-service/internal/shared"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

func newUserResponse(user *entities.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.Avatar,
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	user, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, http.StatusCreated, newUserResponse(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	pair, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, http.StatusOK, pair)
}

// Refresh exchanges a refresh-scoped bearer token for a fresh pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, shared.ErrUnauthorized.Error())
	}

	pair, err := h.auth.Refresh(c.Request().Context(), token)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, http.StatusOK, pair)
}
