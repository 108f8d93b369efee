package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "summit/internal/errors"
	"summit/internal/models"
	"summit/internal/repositories"
	"summit/internal/services"
)

// GoalHandler handles goal-related requests.
type GoalHandler struct {
	goalService     services.GoalServicer
	progressService services.ProgressServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer, progressService services.ProgressServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, progressService: progressService}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Type            models.GoalType     `json:"type" binding:"required,goal_type"`
	Title           string              `json:"title" binding:"required,max=200"`
	Description     string              `json:"description"`
	SuccessCriteria string              `json:"success_criteria"`
	TargetDate      string              `json:"target_date"`
	ParentID        *string             `json:"parent_id"`
	Progress        *int                `json:"progress"`
	Priority        models.GoalPriority `json:"priority" binding:"omitempty,goal_priority"`
	TargetYear      *int                `json:"target_year"`
	TargetMonth     *int                `json:"target_month"`
	TargetWeek      *int                `json:"target_week"`
	FocusAreaID     *string             `json:"focus_area_id"`
}

// UpdateGoalRequest represents the editable goal fields. Type and parent
// cannot be changed after creation and are ignored if sent.
type UpdateGoalRequest struct {
	Title           *string              `json:"title" binding:"omitempty,max=200"`
	Description     *string              `json:"description"`
	Progress        *int                 `json:"progress"`
	Priority        *models.GoalPriority `json:"priority" binding:"omitempty,goal_priority"`
	SuccessCriteria *string              `json:"success_criteria"`
	TargetDate      *string              `json:"target_date"`
	FocusAreaID     *string              `json:"focus_area_id"`
}

// ProgressRequest is the body of a progress update. Progress is decoded as a
// number so that fractional values can be rejected explicitly.
type ProgressRequest struct {
	Progress *float64 `json:"progress" binding:"required"`
}

// ProgressResponse is returned after a progress update.
type ProgressResponse struct {
	Success  bool `json:"success" example:"true"`
	Progress int  `json:"progress" example:"80"`
}

// ListGoalsQuery holds the goal listing filters.
type ListGoalsQuery struct {
	Type        string `form:"type"`
	ParentID    string `form:"parent_id"`
	TargetYear  *int   `form:"target_year"`
	TargetMonth *int   `form:"target_month"`
	TargetWeek  *int   `form:"target_week"`
	Date        string `form:"date" binding:"omitempty,iso_date"`
}

// ListGoals handles listing goals.
// @Summary     List goals
// @Description List goals, optionally filtered by type, parent and period. When date is given with a type, the period is taken from the date (ISO week for weekly goals).
// @Tags        goals
// @Produce     json
// @Param       type         query string false "Goal type (annual/monthly/weekly)"
// @Param       parent_id    query string false "Parent goal ID, or 'null' for top-level goals"
// @Param       target_year  query int    false "Target year"
// @Param       target_month query int    false "Target month (1-12)"
// @Param       target_week  query int    false "Target ISO week (1-53)"
// @Param       date         query string false "Date (YYYY-MM-DD) to resolve the period from"
// @Success     200 {array}  models.Goal "Goals, newest first"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	var q ListGoalsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	query := services.GoalQuery{
		ParentID:    q.ParentID,
		TargetYear:  q.TargetYear,
		TargetMonth: q.TargetMonth,
		TargetWeek:  q.TargetWeek,
		Date:        q.Date,
	}
	if q.Type != "" {
		t := models.GoalType(q.Type)
		query.Type = &t
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// GetGoal handles retrieving a single goal.
// @Summary     Get goal
// @Tags        goals
// @Produce     json
// @Param       id  path     string true "Goal ID"
// @Success     200 {object} models.Goal "Goal"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoalByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// GetGoalWithChildren handles retrieving a goal and its direct children.
// @Summary     Get goal with children
// @Tags        goals
// @Produce     json
// @Param       id  path     string true "Goal ID"
// @Success     200 {object} models.GoalWithChildren "Goal with a children array"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/with-children [get]
func (h *GoalHandler) GetGoalWithChildren(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoalWithChildren(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// GetGoalHierarchy handles retrieving a goal's ancestor chain.
// @Summary     Get goal hierarchy
// @Description Returns the chain of goals from the top-level ancestor down to the requested goal.
// @Tags        goals
// @Produce     json
// @Param       id  path     string true "Goal ID"
// @Success     200 {array}  models.Goal "Ancestors, root first"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/hierarchy [get]
func (h *GoalHandler) GetGoalHierarchy(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	chain, err := h.goalService.GetGoalHierarchy(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, chain)
}

// CreateGoal handles creating a goal.
// @Summary     Create goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body     CreateGoalRequest true "Goal details"
// @Success     201     {object} models.Goal "Goal created"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     404     {object} ErrorResponse "Parent goal or focus area not found"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), services.CreateGoalInput{
		Type:            req.Type,
		Title:           req.Title,
		Description:     req.Description,
		SuccessCriteria: req.SuccessCriteria,
		TargetDate:      req.TargetDate,
		ParentID:        req.ParentID,
		Progress:        req.Progress,
		Priority:        req.Priority,
		TargetYear:      req.TargetYear,
		TargetMonth:     req.TargetMonth,
		TargetWeek:      req.TargetWeek,
		FocusAreaID:     req.FocusAreaID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// UpdateGoal handles updating a goal's editable fields. Progress set here is
// stored as given and not propagated.
// @Summary     Update goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path     string            true "Goal ID"
// @Param       request body     UpdateGoalRequest true "Fields to update"
// @Success     200     {object} models.Goal "Updated goal"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     404     {object} ErrorResponse "Goal not found"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), id, repositories.GoalUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Progress:        req.Progress,
		Priority:        req.Priority,
		SuccessCriteria: req.SuccessCriteria,
		TargetDate:      req.TargetDate,
		FocusAreaID:     req.FocusAreaID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// UpdateProgress handles a progress update and its propagation to the
// parent and grandparent.
// @Summary     Update goal progress
// @Description Sets progress (integer 0-100) and recomputes the parent and grandparent as the rounded mean of their children.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path     string          true "Goal ID"
// @Param       request body     ProgressRequest true "New progress"
// @Success     200     {object} ProgressResponse "Progress stored"
// @Failure     400     {object} ErrorResponse "Invalid progress"
// @Failure     404     {object} ErrorResponse "Goal not found"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /goals/{id}/progress [put]
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrInvalidProgress)
		return
	}
	p := *req.Progress
	if p != math.Trunc(p) || p < 0 || p > 100 {
		respondWithError(c, apperrors.ErrInvalidProgress)
		return
	}

	progress, err := h.progressService.SetProgress(c.Request.Context(), id, int(p))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProgressResponse{Success: true, Progress: progress})
}

// DeleteGoal handles deleting a goal. Children are handled by the configured
// delete policy.
// @Summary     Delete goal
// @Tags        goals
// @Produce     json
// @Param       id  path     string true "Goal ID"
// @Success     200 {object} SuccessResponse "Goal deleted"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
