package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"summit/internal/models"
	"summit/internal/services"
)

// ReflectionHandler handles morning note and evening reflection requests.
type ReflectionHandler struct {
	reflectionService services.ReflectionServicer
}

// NewReflectionHandler creates a new ReflectionHandler.
func NewReflectionHandler(reflectionService services.ReflectionServicer) *ReflectionHandler {
	return &ReflectionHandler{reflectionService: reflectionService}
}

// UpsertReflectionRequest represents the body of a reflection write.
type UpsertReflectionRequest struct {
	Content string `json:"content"`
	Mood    *int   `json:"mood" binding:"omitempty,min=1,max=10"`
}

type reflectionURI struct {
	Kind string `uri:"kind" binding:"required,reflection_kind"`
	Date string `uri:"date" binding:"required,iso_date"`
}

type listReflectionsQuery struct {
	Kind string `form:"kind" binding:"omitempty,reflection_kind"`
	From string `form:"from" binding:"omitempty,iso_date"`
	To   string `form:"to" binding:"omitempty,iso_date"`
}

// ListReflections handles listing reflections.
// @Summary     List reflections
// @Tags        reflections
// @Produce     json
// @Param       kind query    string false "morning or evening"
// @Param       from query    string false "First day (YYYY-MM-DD)"
// @Param       to   query    string false "Last day (YYYY-MM-DD)"
// @Success     200  {array}  models.Reflection "Reflections, newest day first"
// @Failure     400  {object} ErrorResponse "Invalid input"
// @Failure     500  {object} ErrorResponse "Server error"
// @Router      /reflections [get]
func (h *ReflectionHandler) ListReflections(c *gin.Context) {
	var q listReflectionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	filter := services.ReflectionFilter{From: q.From, To: q.To}
	if q.Kind != "" {
		kind := models.ReflectionKind(q.Kind)
		filter.Kind = &kind
	}

	entries, err := h.reflectionService.ListReflections(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetReflection handles retrieving one day's reflection.
// @Summary     Get reflection
// @Tags        reflections
// @Produce     json
// @Param       kind path     string true "morning or evening"
// @Param       date path     string true "Day (YYYY-MM-DD)"
// @Success     200  {object} models.Reflection "Reflection"
// @Failure     400  {object} ErrorResponse "Invalid kind or date"
// @Failure     404  {object} ErrorResponse "Reflection not found"
// @Failure     500  {object} ErrorResponse "Server error"
// @Router      /reflections/{kind}/{date} [get]
func (h *ReflectionHandler) GetReflection(c *gin.Context) {
	var uri reflectionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	entry, err := h.reflectionService.GetReflection(c.Request.Context(), models.ReflectionKind(uri.Kind), uri.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpsertReflection handles writing one day's reflection.
// @Summary     Write reflection
// @Description Creates or replaces the morning note or evening reflection for a day.
// @Tags        reflections
// @Accept      json
// @Produce     json
// @Param       kind    path     string                  true "morning or evening"
// @Param       date    path     string                  true "Day (YYYY-MM-DD)"
// @Param       request body     UpsertReflectionRequest true "Reflection"
// @Success     200     {object} models.Reflection "Stored reflection"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /reflections/{kind}/{date} [put]
func (h *ReflectionHandler) UpsertReflection(c *gin.Context) {
	var uri reflectionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var req UpsertReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	entry, err := h.reflectionService.UpsertReflection(c.Request.Context(), models.ReflectionKind(uri.Kind), uri.Date, req.Content, req.Mood)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteReflection handles deleting one day's reflection.
// @Summary     Delete reflection
// @Tags        reflections
// @Produce     json
// @Param       kind path     string true "morning or evening"
// @Param       date path     string true "Day (YYYY-MM-DD)"
// @Success     200  {object} SuccessResponse "Reflection deleted"
// @Failure     400  {object} ErrorResponse "Invalid kind or date"
// @Failure     404  {object} ErrorResponse "Reflection not found"
// @Failure     500  {object} ErrorResponse "Server error"
// @Router      /reflections/{kind}/{date} [delete]
func (h *ReflectionHandler) DeleteReflection(c *gin.Context) {
	var uri reflectionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	if err := h.reflectionService.DeleteReflection(c.Request.Context(), models.ReflectionKind(uri.Kind), uri.Date); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
