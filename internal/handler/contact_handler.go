package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"skarchitects/internal/model"
	"skarchitects/internal/response"
	"skarchitects/internal/service"
)

// ContactHandler handles contact-form lead endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact-form submission.
type ContactRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

// Submit godoc
// @Summary Submit a contact inquiry
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Inquiry fields"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	lead := &model.ContactLead{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Message:     req.Message,
	}

	if err := h.contactService.Submit(c.Request().Context(), lead); err != nil {
		log.Printf("save contact: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Server Error"))
	}

	return c.JSON(http.StatusCreated, response.Message("Message sent successfully!"))
}

// ListLeads godoc
// @Summary List contact inquiries
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]model.ContactLead}
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /contact [get]
func (h *ContactHandler) ListLeads(c echo.Context) error {
	leads, err := h.contactService.List(c.Request().Context())
	if err != nil {
		log.Printf("list contacts: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Server Error"))
	}
	if leads == nil {
		leads = []model.ContactLead{}
	}
	return c.JSON(http.StatusOK, response.List(len(leads), leads))
}
