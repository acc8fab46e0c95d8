package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reminderHandler handles the medicine reminders tab.
type reminderHandler struct {
	reminders portssvc.ReminderSvc
	loc       *time.Location
	now       func() time.Time
}

func newReminderHandler(reminders portssvc.ReminderSvc, loc *time.Location) *reminderHandler {
	return &reminderHandler{reminders: reminders, loc: loc, now: time.Now}
}

func registerReminderRoutes(rg *gin.RouterGroup, reminders portssvc.ReminderSvc, loc *time.Location) {
	h := newReminderHandler(reminders, loc)

	group := rg.Group("/reminders")
	{
		group.POST("", h.set)
		group.GET("", h.list)
		group.DELETE("/:id", h.delete)
	}
}

// set godoc
// @Summary Set a medicine reminder
// @Description reminderTime is "HH:MM" (today, local time) or a full timestamp. Stored in local time; never dispatched.
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminder body dto.SetReminderRequest true "Reminder"
// @Success 201 {object} dto.SetReminderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reminders [post]
func (h *reminderHandler) set(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.SetReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	when, err := req.When(h.now().In(h.loc))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reminder, err := h.reminders.ScheduleReminder(c.Request.Context(), username, req.Medication, when)
	if err != nil {
		respondError(c, err, "set reminder")
		return
	}

	c.JSON(http.StatusCreated, dto.SetReminderResponse{
		Message:  string(domain.MsgReminderSet),
		Reminder: dto.ToReminderResponse(reminder),
	})
}

// list godoc
// @Summary My medicine reminders
// @Tags reminders
// @Produce json
// @Success 200 {object} dto.ListRemindersResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reminders [get]
func (h *reminderHandler) list(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	reminders, err := h.reminders.ListReminders(c.Request.Context(), username)
	if err != nil {
		respondError(c, err, "list reminders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRemindersResponse(reminders))
}

// delete godoc
// @Summary Delete a medicine reminder
// @Tags reminders
// @Produce json
// @Param id path int true "Reminder ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reminders/{id} [delete]
func (h *reminderHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Reminder ID must be a positive integer"})
		return
	}
	if err := h.reminders.DeleteReminder(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete reminder")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Message: string(domain.MsgReminderDeleted)})
}
