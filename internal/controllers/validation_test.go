package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"sara-web/internal/api"
	"sara-web/internal/models"
	"sara-web/internal/testhelpers"
)

func TestBindFormReportsFieldsByFormName(t *testing.T) {
	RegisterValidators()
	c, _ := testhelpers.NewGinTestContext()
	c.Request = testhelpers.NewFormPostRequest("/register", url.Values{
		"nom":   {"Durand"},
		"email": {"nope"},
	})

	var form models.RegisterForm
	errs := bindForm(c, &form)

	assert.False(t, errs.Valid())
	assert.True(t, errs.Missing())
	assert.Equal(t, FieldErrors{
		"prenom":   requiredMessage,
		"email":    "Adresse email invalide.",
		"password": requiredMessage,
	}, errs)
	assert.Equal(t, "Durand", form.Nom)
}

func TestBindFormValid(t *testing.T) {
	RegisterValidators()
	c, _ := testhelpers.NewGinTestContext()
	c.Request = testhelpers.NewFormPostRequest("/new-appointment", url.Values{
		"date":  {"2026-03-10"},
		"time":  {"14:00"},
		"motif": {"Suivi"},
	})

	var form models.NewAppointmentForm
	errs := bindForm(c, &form)

	assert.True(t, errs.Valid())
	assert.Equal(t, "2026-03-10T14:00:00", form.DateHeure())
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, errorStatus(&api.Error{StatusCode: http.StatusUnauthorized}))
	assert.Equal(t, http.StatusBadGateway, errorStatus(&api.Error{StatusCode: http.StatusInternalServerError}))
	assert.Equal(t, http.StatusBadGateway, errorStatus(fmt.Errorf("GET /api/appointments/me: %w", errors.New("connection refused"))))
}
