package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"summit/internal/models"
	"summit/internal/pagination"
	"summit/internal/services"
)

// HabitHandler handles habit and habit log requests.
type HabitHandler struct {
	habitService services.HabitServicer
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(habitService services.HabitServicer) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

// CreateHabitRequest represents the request payload for creating a habit.
type CreateHabitRequest struct {
	Name        string                `json:"name" binding:"required,max=100"`
	Description string                `json:"description"`
	Frequency   models.HabitFrequency `json:"frequency" binding:"omitempty,habit_frequency"`
	FocusAreaID *string               `json:"focus_area_id"`
}

// UpdateHabitRequest represents the request payload for updating a habit.
type UpdateHabitRequest struct {
	Name        *string                `json:"name" binding:"omitempty,max=100"`
	Description *string                `json:"description"`
	Frequency   *models.HabitFrequency `json:"frequency" binding:"omitempty,habit_frequency"`
	IsActive    *bool                  `json:"is_active"`
}

// LogHabitRequest represents a day's entry for a habit.
type LogHabitRequest struct {
	Completed bool   `json:"completed"`
	Note      string `json:"note" binding:"max=500"`
}

type habitLogURI struct {
	ID   string `uri:"id" binding:"required"`
	Date string `uri:"date" binding:"required,iso_date"`
}

type habitLogQuery struct {
	From string `form:"from" binding:"omitempty,iso_date"`
	To   string `form:"to" binding:"omitempty,iso_date"`
}

// CreateHabit handles creating a habit.
// @Summary     Create habit
// @Tags        habits
// @Accept      json
// @Produce     json
// @Param       request body     CreateHabitRequest true "Habit details"
// @Success     201     {object} models.Habit "Habit created"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     404     {object} ErrorResponse "Focus area not found"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /habits [post]
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	habit, err := h.habitService.CreateHabit(c.Request.Context(), req.Name, req.Description, req.Frequency, req.FocusAreaID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// ListHabits handles listing habits.
// @Summary     List habits
// @Tags        habits
// @Produce     json
// @Param       is_active query bool false "Filter by active status"
// @Param       page      query int  false "Page number (default 1)"
// @Param       page_size query int  false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Habit] "Paginated habits"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /habits [get]
func (h *HabitHandler) ListHabits(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	isActive, err := queryBool(c, "is_active")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.habitService.ListHabits(c.Request.Context(), page, isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHabit handles retrieving a habit.
// @Summary     Get habit
// @Tags        habits
// @Produce     json
// @Param       id  path     string true "Habit ID"
// @Success     200 {object} models.Habit "Habit"
// @Failure     404 {object} ErrorResponse "Habit not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /habits/{id} [get]
func (h *HabitHandler) GetHabit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	habit, err := h.habitService.GetHabitByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// UpdateHabit handles updating a habit.
// @Summary     Update habit
// @Tags        habits
// @Accept      json
// @Produce     json
// @Param       id      path     string             true "Habit ID"
// @Param       request body     UpdateHabitRequest true "Fields to update"
// @Success     200     {object} models.Habit "Updated habit"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     404     {object} ErrorResponse "Habit not found"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /habits/{id} [put]
func (h *HabitHandler) UpdateHabit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	habit, err := h.habitService.UpdateHabit(c.Request.Context(), id, req.Name, req.Description, req.Frequency, req.IsActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// DeleteHabit handles deleting a habit and its logs.
// @Summary     Delete habit
// @Tags        habits
// @Produce     json
// @Param       id  path     string true "Habit ID"
// @Success     200 {object} SuccessResponse "Habit deleted"
// @Failure     404 {object} ErrorResponse "Habit not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /habits/{id} [delete]
func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.habitService.DeleteHabit(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// LogHabit handles recording a habit for a day.
// @Summary     Log habit
// @Description Creates or replaces the habit's log for the given day.
// @Tags        habits
// @Accept      json
// @Produce     json
// @Param       id      path     string          true "Habit ID"
// @Param       date    path     string          true "Day (YYYY-MM-DD)"
// @Param       request body     LogHabitRequest true "Log entry"
// @Success     200     {object} models.HabitLog "Stored log"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     404     {object} ErrorResponse "Habit not found"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /habits/{id}/logs/{date} [put]
func (h *HabitHandler) LogHabit(c *gin.Context) {
	var uri habitLogURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var req LogHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	entry, err := h.habitService.LogHabit(c.Request.Context(), uri.ID, uri.Date, req.Completed, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetHabitLogs handles listing a habit's logs.
// @Summary     List habit logs
// @Tags        habits
// @Produce     json
// @Param       id   path     string true  "Habit ID"
// @Param       from query    string false "First day (YYYY-MM-DD)"
// @Param       to   query    string false "Last day (YYYY-MM-DD)"
// @Success     200  {array}  models.HabitLog "Logs, oldest first"
// @Failure     400  {object} ErrorResponse "Invalid input"
// @Failure     404  {object} ErrorResponse "Habit not found"
// @Failure     500  {object} ErrorResponse "Server error"
// @Router      /habits/{id}/logs [get]
func (h *HabitHandler) GetHabitLogs(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q habitLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	logs, err := h.habitService.GetHabitLogs(c.Request.Context(), id, services.HabitLogRange{From: q.From, To: q.To})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
