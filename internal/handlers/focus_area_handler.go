package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"summit/internal/services"
)

// FocusAreaHandler handles focus area requests.
type FocusAreaHandler struct {
	focusAreaService services.FocusAreaServicer
}

// NewFocusAreaHandler creates a new FocusAreaHandler.
func NewFocusAreaHandler(focusAreaService services.FocusAreaServicer) *FocusAreaHandler {
	return &FocusAreaHandler{focusAreaService: focusAreaService}
}

// CreateFocusAreaRequest represents the request payload for creating a focus area.
type CreateFocusAreaRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"max=50"`
	Color       string `json:"color" binding:"omitempty,hex_color"`
}

// UpdateFocusAreaRequest represents the request payload for updating a focus area.
type UpdateFocusAreaRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" binding:"omitempty,max=50"`
	Color       *string `json:"color" binding:"omitempty,hex_color"`
}

// CreateFocusArea handles creating a focus area.
// @Summary     Create focus area
// @Tags        focus-areas
// @Accept      json
// @Produce     json
// @Param       request body     CreateFocusAreaRequest true "Focus area details"
// @Success     201     {object} models.FocusArea "Focus area created"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     409     {object} ErrorResponse "Name already used"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /focus-areas [post]
func (h *FocusAreaHandler) CreateFocusArea(c *gin.Context) {
	var req CreateFocusAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	area, err := h.focusAreaService.CreateFocusArea(c.Request.Context(), req.Name, req.Description, req.Icon, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, area)
}

// ListFocusAreas handles listing focus areas.
// @Summary     List focus areas
// @Tags        focus-areas
// @Produce     json
// @Success     200 {array}  models.FocusArea "Focus areas sorted by name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /focus-areas [get]
func (h *FocusAreaHandler) ListFocusAreas(c *gin.Context) {
	areas, err := h.focusAreaService.ListFocusAreas(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, areas)
}

// GetFocusArea handles retrieving a focus area.
// @Summary     Get focus area
// @Tags        focus-areas
// @Produce     json
// @Param       id  path     string true "Focus area ID"
// @Success     200 {object} models.FocusArea "Focus area"
// @Failure     404 {object} ErrorResponse "Focus area not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /focus-areas/{id} [get]
func (h *FocusAreaHandler) GetFocusArea(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	area, err := h.focusAreaService.GetFocusAreaByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, area)
}

// UpdateFocusArea handles updating a focus area.
// @Summary     Update focus area
// @Tags        focus-areas
// @Accept      json
// @Produce     json
// @Param       id      path     string                 true "Focus area ID"
// @Param       request body     UpdateFocusAreaRequest true "Fields to update"
// @Success     200     {object} models.FocusArea "Updated focus area"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     404     {object} ErrorResponse "Focus area not found"
// @Failure     409     {object} ErrorResponse "Name already used"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /focus-areas/{id} [put]
func (h *FocusAreaHandler) UpdateFocusArea(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateFocusAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	area, err := h.focusAreaService.UpdateFocusArea(c.Request.Context(), id, req.Name, req.Description, req.Icon, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, area)
}

// DeleteFocusArea handles deleting a focus area.
// @Summary     Delete focus area
// @Description Goals and habits that reference the focus area keep the reference.
// @Tags        focus-areas
// @Produce     json
// @Param       id  path     string true "Focus area ID"
// @Success     200 {object} SuccessResponse "Focus area deleted"
// @Failure     404 {object} ErrorResponse "Focus area not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /focus-areas/{id} [delete]
func (h *FocusAreaHandler) DeleteFocusArea(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.focusAreaService.DeleteFocusArea(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
