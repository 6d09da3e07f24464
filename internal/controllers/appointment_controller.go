package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sara-web/internal/api"
	"sara-web/internal/middleware"
	"sara-web/internal/models"
	"sara-web/internal/service"
	"sara-web/internal/session"
	"sara-web/internal/views"
)

const (
	loadErrorMessage    = "Erreur lors du chargement des rendez-vous"
	cancelledMessage    = "RDV annulé avec succès !"
	cancelErrorMessage  = "Erreur lors de l'annulation"
	bookedMessage       = "Rendez-vous réservé avec succès !"
	bookingErrorMessage = "Erreur lors de la réservation"
	missingFieldsError  = "Veuillez remplir tous les champs"
)

type AppointmentController struct {
	appointmentService service.AppointmentService
	pages              *Pages
	log                logrus.FieldLogger
	now                func() time.Time
}

func NewAppointmentController(appointmentService service.AppointmentService, pages *Pages, log logrus.FieldLogger, now func() time.Time) *AppointmentController {
	return &AppointmentController{
		appointmentService: appointmentService,
		pages:              pages,
		log:                log,
		now:                now,
	}
}

// List handles GET /my-appointments
func (ac *AppointmentController) List(c *gin.Context) {
	ac.pages.TakeFlash(c)

	appointments, err := ac.appointmentService.GetMine(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		ac.log.WithError(err).Warn("Failed to load appointments")
		ac.pages.Render(c, errorStatus(err), "my_appointments.html", "Mes rendez-vous", gin.H{
			"Error":      api.MessageOr(err, loadErrorMessage),
			"NeedsLogin": api.IsUnauthorized(err),
		})
		return
	}

	ac.pages.Render(c, http.StatusOK, "my_appointments.html", "Mes rendez-vous", gin.H{
		"Appointments": appointments,
	})
}

// Cancel handles POST /my-appointments/:id/cancel. The outcome is flashed and
// the browser is sent back to the reloaded list.
func (ac *AppointmentController) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ac.pages.Flash(c, session.FlashError, cancelErrorMessage)
		ac.pages.Redirect(c, "/my-appointments")
		return
	}

	resp, err := ac.appointmentService.Cancel(c.Request.Context(), middleware.SessionID(c), id)
	if err != nil {
		ac.log.WithError(err).WithField("appointment_id", id).Warn("Failed to cancel appointment")
		ac.pages.Flash(c, session.FlashError, api.MessageOr(err, cancelErrorMessage))
		ac.pages.Redirect(c, "/my-appointments")
		return
	}

	msg := cancelledMessage
	if resp != nil && resp.Message != "" {
		msg = resp.Message
	}
	ac.pages.Flash(c, session.FlashSuccess, msg)
	ac.pages.Redirect(c, "/my-appointments")
}

// ShowNew handles GET /new-appointment. ?date= preselects a day.
func (ac *AppointmentController) ShowNew(c *gin.Context) {
	ac.renderNew(c, http.StatusOK, models.NewAppointmentForm{Date: c.Query("date")}, nil)
}

// Create handles POST /new-appointment
func (ac *AppointmentController) Create(c *gin.Context) {
	var form models.NewAppointmentForm
	if errs := bindForm(c, &form); !errs.Valid() {
		data := gin.H{"Errors": errs}
		if errs.Missing() {
			data["Error"] = missingFieldsError
		}
		ac.renderNew(c, http.StatusBadRequest, form, data)
		return
	}

	req := models.AppointmentRequest{
		DateHeure: form.DateHeure(),
		Motif:     strings.TrimSpace(form.Motif),
	}
	if _, err := ac.appointmentService.Create(c.Request.Context(), middleware.SessionID(c), &req); err != nil {
		ac.log.WithError(err).WithField("date_heure", req.DateHeure).Warn("Failed to book appointment")
		ac.renderNew(c, errorStatus(err), form, gin.H{
			"Error": api.MessageOr(err, bookingErrorMessage),
		})
		return
	}

	ac.pages.Flash(c, session.FlashSuccess, bookedMessage)
	ac.pages.Redirect(c, "/my-appointments")
}

func (ac *AppointmentController) renderNew(c *gin.Context, code int, form models.NewAppointmentForm, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Form"] = form
	data["Times"] = models.AvailableTimes
	data["MinDate"] = views.MinBookingDate(ac.now())
	ac.pages.Render(c, code, "new_appointment.html", "Prendre rendez-vous", data)
}
