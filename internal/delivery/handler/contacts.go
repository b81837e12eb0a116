package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"contact-service/internal/application/services"
	"contact-service/internal/domain/entities"
)

const birthDateLayout = "2006-01-02"

type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type contactRequest struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number"`
	BirthDate      *string `json:"birth_date"`
	AdditionalData string  `json:"additional_data"`
}

func (r *contactRequest) toInput() (services.ContactInput, error) {
	input := services.ContactInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		AdditionalData: r.AdditionalData,
	}
	if r.BirthDate != nil && *r.BirthDate != "" {
		parsed, err := time.Parse(birthDateLayout, *r.BirthDate)
		if err != nil {
			return services.ContactInput{}, err
		}
		input.BirthDate = &parsed
	}
	return input, nil
}

type contactResponse struct {
	ID             uint         `json:"id"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	Email          string       `json:"email"`
	PhoneNumber    string       `json:"phone_number"`
	BirthDate      *string      `json:"birth_date"`
	AdditionalData string       `json:"additional_data"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	User           userResponse `json:"user"`
}

func newContactResponse(contact *entities.Contact, owner *entities.User) contactResponse {
	resp := contactResponse{
		ID:             contact.ID,
		FirstName:      contact.FirstName,
		LastName:       contact.LastName,
		Email:          contact.Email,
		PhoneNumber:    contact.PhoneNumber,
		AdditionalData: contact.AdditionalData,
		CreatedAt:      contact.CreatedAt,
		UpdatedAt:      contact.UpdatedAt,
		User:           newUserResponse(owner),
	}
	if contact.BirthDate != nil {
		formatted := contact.BirthDate.Format(birthDateLayout)
		resp.BirthDate = &formatted
	}
	return resp
}

func (h *ContactHandler) List(c echo.Context) error {
	user := currentUser(c)
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", 100)

	contacts, err := h.contacts.List(c.Request().Context(), user, skip, limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	responses := make([]contactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, newContactResponse(&contacts[i], user))
	}
	return respondData(c, http.StatusOK, responses)
}

func (h *ContactHandler) Get(c echo.Context) error {
	user := currentUser(c)
	id, err := contactID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid contact id")
	}

	contact, err := h.contacts.Get(c.Request().Context(), id, user)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, http.StatusOK, newContactResponse(contact, user))
}

func (h *ContactHandler) Create(c echo.Context) error {
	user := currentUser(c)

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	input, err := req.toInput()
	if err != nil {
		return respondError(c, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
	}

	contact, err := h.contacts.Create(c.Request().Context(), input, user)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, http.StatusCreated, newContactResponse(contact, user))
}

func (h *ContactHandler) Update(c echo.Context) error {
	user := currentUser(c)
	id, err := contactID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid contact id")
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	input, err := req.toInput()
	if err != nil {
		return respondError(c, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
	}

	contact, err := h.contacts.Update(c.Request().Context(), id, input, user)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, http.StatusOK, newContactResponse(contact, user))
}

func (h *ContactHandler) Delete(c echo.Context) error {
	user := currentUser(c)
	id, err := contactID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid contact id")
	}

	contact, err := h.contacts.Remove(c.Request().Context(), id, user)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, http.StatusOK, newContactResponse(contact, user))
}

func contactID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func queryInt(c echo.Context, name string, defaultValue int) int {
	value := c.QueryParam(name)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
