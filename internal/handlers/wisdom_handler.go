package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"summit/internal/pagination"
	"summit/internal/services"
)

// WisdomHandler handles quotation library requests.
type WisdomHandler struct {
	wisdomService services.WisdomServicer
}

// NewWisdomHandler creates a new WisdomHandler.
func NewWisdomHandler(wisdomService services.WisdomServicer) *WisdomHandler {
	return &WisdomHandler{wisdomService: wisdomService}
}

// CreateWisdomRequest represents the request payload for adding a quote.
type CreateWisdomRequest struct {
	Quote      string `json:"quote" binding:"required,max=2000"`
	Author     string `json:"author" binding:"max=200"`
	Source     string `json:"source" binding:"max=200"`
	IsFavorite bool   `json:"is_favorite"`
}

// UpdateWisdomRequest represents the request payload for editing a quote.
type UpdateWisdomRequest struct {
	Quote      *string `json:"quote" binding:"omitempty,max=2000"`
	Author     *string `json:"author" binding:"omitempty,max=200"`
	Source     *string `json:"source" binding:"omitempty,max=200"`
	IsFavorite *bool   `json:"is_favorite"`
}

// CreateWisdom handles adding a quote.
// @Summary     Add quote
// @Tags        wisdom
// @Accept      json
// @Produce     json
// @Param       request body     CreateWisdomRequest true "Quote"
// @Success     201     {object} models.Wisdom "Quote added"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /wisdom [post]
func (h *WisdomHandler) CreateWisdom(c *gin.Context) {
	var req CreateWisdomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	entry, err := h.wisdomService.CreateWisdom(c.Request.Context(), req.Quote, req.Author, req.Source, req.IsFavorite)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListWisdom handles listing quotes.
// @Summary     List quotes
// @Tags        wisdom
// @Produce     json
// @Param       q         query string false "Search quote and author text"
// @Param       favorite  query bool   false "Only favorites (true) or non-favorites (false)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Wisdom] "Paginated quotes"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wisdom [get]
func (h *WisdomHandler) ListWisdom(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	favorite, err := queryBool(c, "favorite")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.wisdomService.ListWisdom(c.Request.Context(), page, services.WisdomFilter{
		Search:   c.Query("q"),
		Favorite: favorite,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRandomWisdom handles returning a random quote.
// @Summary     Random quote
// @Tags        wisdom
// @Produce     json
// @Success     200 {object} models.Wisdom "A quote"
// @Failure     404 {object} ErrorResponse "Library is empty"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wisdom/random [get]
func (h *WisdomHandler) GetRandomWisdom(c *gin.Context) {
	entry, err := h.wisdomService.GetRandomWisdom(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetWisdom handles retrieving a quote.
// @Summary     Get quote
// @Tags        wisdom
// @Produce     json
// @Param       id  path     string true "Quote ID"
// @Success     200 {object} models.Wisdom "Quote"
// @Failure     404 {object} ErrorResponse "Quote not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wisdom/{id} [get]
func (h *WisdomHandler) GetWisdom(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.wisdomService.GetWisdomByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateWisdom handles editing a quote.
// @Summary     Update quote
// @Tags        wisdom
// @Accept      json
// @Produce     json
// @Param       id      path     string              true "Quote ID"
// @Param       request body     UpdateWisdomRequest true "Fields to update"
// @Success     200     {object} models.Wisdom "Updated quote"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     404     {object} ErrorResponse "Quote not found"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /wisdom/{id} [put]
func (h *WisdomHandler) UpdateWisdom(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateWisdomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	entry, err := h.wisdomService.UpdateWisdom(c.Request.Context(), id, req.Quote, req.Author, req.Source, req.IsFavorite)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteWisdom handles deleting a quote.
// @Summary     Delete quote
// @Tags        wisdom
// @Produce     json
// @Param       id  path     string true "Quote ID"
// @Success     200 {object} SuccessResponse "Quote deleted"
// @Failure     404 {object} ErrorResponse "Quote not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wisdom/{id} [delete]
func (h *WisdomHandler) DeleteWisdom(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.wisdomService.DeleteWisdom(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
