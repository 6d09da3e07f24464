package views

import (
	"html/template"
	"time"

	"sara-web/internal/models"
)

var statusLabels = map[models.AppointmentStatus]string{
	models.StatusPlanned:   "Planifié",
	models.StatusConfirmed: "Confirmé",
	models.StatusCompleted: "Terminé",
	models.StatusCancelled: "Annulé",
}

// StatusLabel is the French label of an appointment status.
func StatusLabel(status models.AppointmentStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// FuncMap returns the template helpers. now is the clock used by date helpers.
func FuncMap(now func() time.Time) template.FuncMap {
	return template.FuncMap{
		"daysBefore": func(dateHeure string) int {
			t, ok := ParseDateHeure(dateHeure)
			if !ok {
				return 0
			}
			return DaysBefore(t, now())
		},
		"formatDateHeure": func(dateHeure string) string {
			t, ok := ParseDateHeure(dateHeure)
			if !ok {
				return dateHeure
			}
			return t.Format("02/01/2006 à 15:04")
		},
		"isWeekend":   IsWeekend,
		"statusLabel": StatusLabel,
		"statusClass": func(status models.AppointmentStatus) string {
			return "status-" + string(status)
		},
	}
}
