package handler

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "skarchitects/internal/errors"
	"skarchitects/internal/model"
	"skarchitects/internal/response"
	"skarchitects/internal/service"
)

// ProjectHandler handles portfolio project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ProjectRequest carries the editable fields of a project. The same
// shape serves create and full-document update.
type ProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Location    string `json:"location"`
	Year        string `json:"year"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Sustainable bool   `json:"sustainable"`
}

func (r *ProjectRequest) toModel() *model.Project {
	return &model.Project{
		Title:       r.Title,
		Category:    r.Category,
		Image:       r.Image,
		Location:    r.Location,
		Year:        r.Year,
		Description: r.Description,
		Details:     r.Details,
		Sustainable: r.Sustainable,
	}
}

// List godoc
// @Summary List all portfolio projects
// @Tags projects
// @Produce json
// @Success 200 {object} response.Envelope{data=[]model.Project}
// @Failure 500 {object} response.Envelope
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projectService.List(c.Request().Context())
	if err != nil {
		log.Printf("list projects: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Server Error"))
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return c.JSON(http.StatusOK, response.Data(projects))
}

// Create godoc
// @Summary Create a portfolio project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProjectRequest true "Project fields"
// @Success 201 {object} response.Envelope{data=model.Project}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	project := req.toModel()
	if err := h.projectService.Create(c.Request().Context(), project); err != nil {
		log.Printf("create project: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Server Error"))
	}

	return c.JSON(http.StatusCreated, response.Data(project))
}

// Update godoc
// @Summary Update a portfolio project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body ProjectRequest true "Project fields"
// @Success 200 {object} response.Envelope{data=model.Project}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid project id"))
	}

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	project, err := h.projectService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		if err == apperrors.ErrProjectNotFound {
			return c.JSON(http.StatusNotFound, response.Error(err.Error()))
		}
		log.Printf("update project: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Server Error"))
	}

	return c.JSON(http.StatusOK, response.Data(project))
}

// Delete godoc
// @Summary Delete a portfolio project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid project id"))
	}

	// Unconditional delete: removing an absent id still reports success.
	if err := h.projectService.Delete(c.Request().Context(), id); err != nil {
		log.Printf("delete project: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Server Error"))
	}

	return c.JSON(http.StatusOK, response.Message("Project deleted"))
}
