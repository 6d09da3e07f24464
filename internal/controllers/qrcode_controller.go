package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"sara-web/internal/middleware"
	"sara-web/internal/models"
	"sara-web/internal/service"
	"sara-web/internal/views"
)

const (
	qrCodeSize      = 256
	appointmentSpan = time.Hour
	icsTimeLayout   = "20060102T150405"
)

type QRCodeController struct {
	appointmentService service.AppointmentService
	log                logrus.FieldLogger
}

func NewQRCodeController(appointmentService service.AppointmentService, log logrus.FieldLogger) *QRCodeController {
	return &QRCodeController{
		appointmentService: appointmentService,
		log:                log,
	}
}

// GenerateQRCode handles GET /my-appointments/:id/qrcode - a QR code holding
// the appointment as a calendar event, to scan into a phone's agenda
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Rendez-vous introuvable")
		return
	}

	appt, err := qc.appointmentService.Find(c.Request.Context(), middleware.SessionID(c), id)
	if errors.Is(err, service.ErrAppointmentNotFound) {
		c.String(http.StatusNotFound, "Rendez-vous introuvable")
		return
	}
	if err != nil {
		qc.log.WithError(err).WithField("appointment_id", id).Warn("Failed to load appointment for QR code")
		c.String(errorStatus(err), loadErrorMessage)
		return
	}

	event, err := calendarEvent(appt)
	if err != nil {
		c.String(http.StatusUnprocessableEntity, "Date du rendez-vous illisible")
		return
	}

	// Medium error recovery
	qrCode, err := qrcode.New(event, qrcode.Medium)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pngData, err := qrCode.PNG(qrCodeSize)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate QR code image")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=rdv-%d.png", id))
	c.Data(http.StatusOK, "image/png", pngData)
}

// calendarEvent renders the appointment as an iCalendar VEVENT
func calendarEvent(appt *models.AppointmentResponse) (string, error) {
	start, ok := views.ParseDateHeure(appt.DateHeure)
	if !ok {
		return "", fmt.Errorf("unparseable appointment date %q", appt.DateHeure)
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SARA//Rendez-vous//FR",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:sara-appointment-%d", appt.ID),
		"DTSTART:" + start.Format(icsTimeLayout),
		"DTEND:" + start.Add(appointmentSpan).Format(icsTimeLayout),
		"SUMMARY:" + icsEscape("RDV SARA : "+appt.Motif),
		"STATUS:" + icsStatus(appt.Status),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n"), nil
}

var icsEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`, "\r", "")

func icsEscape(s string) string {
	return icsEscaper.Replace(s)
}

func icsStatus(status models.AppointmentStatus) string {
	switch status {
	case models.StatusCancelled:
		return "CANCELLED"
	case models.StatusConfirmed, models.StatusCompleted:
		return "CONFIRMED"
	default:
		return "TENTATIVE"
	}
}
