package handlers

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// appointmentHandler handles the appointments tab.
type appointmentHandler struct {
	appointments portssvc.AppointmentSvc
	doctors      []string
}

func newAppointmentHandler(appointments portssvc.AppointmentSvc, doctors []string) *appointmentHandler {
	return &appointmentHandler{appointments: appointments, doctors: doctors}
}

func registerAppointmentRoutes(rg *gin.RouterGroup, appointments portssvc.AppointmentSvc, doctors []string) {
	h := newAppointmentHandler(appointments, doctors)

	rg.GET("/doctors", h.listDoctors)

	group := rg.Group("/appointments")
	{
		group.POST("", h.book)
		group.GET("", h.list)
		group.DELETE("/:id", h.delete)
	}
}

// listDoctors godoc
// @Summary Bookable doctors
// @Tags appointments
// @Produce json
// @Success 200 {object} dto.DoctorsResponse
// @Security BearerAuth
// @Router /doctors [get]
func (h *appointmentHandler) listDoctors(c *gin.Context) {
	doctors := h.doctors
	if doctors == nil {
		doctors = []string{}
	}
	c.JSON(http.StatusOK, dto.DoctorsResponse{Doctors: doctors})
}

// book godoc
// @Summary Book an appointment
// @Description A naive date-time is read in the given timezone (default Asia/Kolkata) and stored in UTC.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body dto.BookAppointmentRequest true "Booking"
// @Success 201 {object} dto.BookAppointmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /appointments [post]
func (h *appointmentHandler) book(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	when, err := req.When()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	appointment, err := h.appointments.BookAppointment(c.Request.Context(), username, req.DoctorName, when)
	if err != nil {
		respondError(c, err, "book appointment")
		return
	}

	c.JSON(http.StatusCreated, dto.BookAppointmentResponse{
		Message:     string(domain.MsgAppointmentBooked),
		Appointment: dto.ToAppointmentResponse(appointment),
	})
}

// list godoc
// @Summary My appointments
// @Tags appointments
// @Produce json
// @Success 200 {object} dto.ListAppointmentsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /appointments [get]
func (h *appointmentHandler) list(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	appointments, err := h.appointments.ListAppointments(c.Request.Context(), username)
	if err != nil {
		respondError(c, err, "list appointments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAppointmentsResponse(appointments))
}

// delete godoc
// @Summary Delete an appointment
// @Description Deleting an id that does not exist still succeeds.
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /appointments/{id} [delete]
func (h *appointmentHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Appointment ID must be a positive integer"})
		return
	}
	if err := h.appointments.DeleteAppointment(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete appointment")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Message: string(domain.MsgAppointmentDeleted)})
}
