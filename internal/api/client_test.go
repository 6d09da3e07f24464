package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sara-web/internal/api"
	"sara-web/internal/models"
	"sara-web/internal/testhelpers"
)

func newClient(t *testing.T) (*api.Client, *testhelpers.Backend) {
	t.Helper()
	backend := testhelpers.NewBackend(t)
	return api.NewClient(backend.URL+"/", 5*time.Second), backend
}

func TestLogin(t *testing.T) {
	client, backend := newClient(t)
	backend.OnJSON(http.MethodPost, "/api/auth/login", http.StatusOK, `{"token":"jwt-123","email":"a@b.fr"}`)

	resp, err := client.Login(context.Background(), models.AuthRequest{Email: "a@b.fr", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-123", resp.Token)

	call, ok := backend.LastCall()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, call.Method)
	assert.JSONEq(t, `{"email":"a@b.fr","password":"secret"}`, call.Body)
	assert.Empty(t, call.Authorization)
}

func TestLoginUnauthorizedCarriesMessage(t *testing.T) {
	client, backend := newClient(t)
	backend.OnJSON(http.MethodPost, "/api/auth/login", http.StatusUnauthorized,
		`{"success":false,"message":"Email ou mot de passe incorrect."}`)

	_, err := client.Login(context.Background(), models.AuthRequest{Email: "a@b.fr", Password: "bad"})
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Email ou mot de passe incorrect.", api.MessageOr(err, "default"))
	assert.True(t, api.IsUnauthorized(err))
}

func TestRegisterPlainTextErrorFallsBackToDefault(t *testing.T) {
	client, backend := newClient(t)
	backend.OnText(http.MethodPost, "/api/auth/register", http.StatusBadRequest, "Rôle invalide")

	_, err := client.Register(context.Background(), models.RegisterRequest{Email: "a@b.fr"})
	require.Error(t, err)
	assert.Equal(t, "Erreur lors de la création du compte", api.MessageOr(err, "Erreur lors de la création du compte"))
	assert.Equal(t, "Rôle invalide", api.TextOr(err, "default"))
}

func TestConfirmEmailEscapesToken(t *testing.T) {
	client, backend := newClient(t)
	backend.OnText(http.MethodGet, "/api/auth/confirm-email", http.StatusOK, "Votre compte a été activé avec succès !")

	msg, err := client.ConfirmEmail(context.Background(), "a b&c")
	require.NoError(t, err)
	assert.Equal(t, "Votre compte a été activé avec succès !", msg)

	call, _ := backend.LastCall()
	assert.Equal(t, "token=a+b%26c", call.RawQuery)
}

func TestResetPasswordTextError(t *testing.T) {
	client, backend := newClient(t)
	backend.OnText(http.MethodPost, "/api/auth/reset-password", http.StatusBadRequest, "Ce lien a expiré.")

	_, err := client.ResetPassword(context.Background(), models.ResetPasswordRequest{Token: "t", NewPassword: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "Ce lien a expiré.", api.TextOr(err, "Une erreur est survenue."))

	call, _ := backend.LastCall()
	assert.JSONEq(t, `{"token":"t","newPassword":"secret1"}`, call.Body)
}

func TestAppointmentsSendBearerToken(t *testing.T) {
	client, backend := newClient(t)
	backend.OnJSON(http.MethodGet, "/api/appointments/me", http.StatusOK, `[
		{"id":7,"dateHeure":"2026-03-02 09:00","motif":"Bilan","patientNom":"Durand","patientPrenom":"Léa","status":"PLANNED","canPatientCancel":true}
	]`)
	backend.OnJSON(http.MethodDelete, "/api/appointments/7/cancel", http.StatusOK, `{"message":"RDV annulé avec succès"}`)
	backend.OnJSON(http.MethodPost, "/api/appointments", http.StatusOK,
		`{"id":8,"dateHeure":"2026-03-03 10:00","motif":"Suivi","status":"PLANNED"}`)

	ctx := context.Background()

	list, err := client.MyAppointments(ctx, "jwt-123")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].ID)
	assert.Equal(t, models.StatusPlanned, list[0].Status)
	assert.True(t, list[0].CanPatientCancel)

	msg, err := client.CancelAppointment(ctx, "jwt-123", 7)
	require.NoError(t, err)
	assert.Equal(t, "RDV annulé avec succès", msg.Message)

	created, err := client.CreateAppointment(ctx, "jwt-123", models.AppointmentRequest{DateHeure: "2026-03-03T10:00:00", Motif: "Suivi"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)

	for _, call := range backend.Calls() {
		assert.Equal(t, "Bearer jwt-123", call.Authorization, call.Path)
	}
}

func TestTransportErrorUsesDefaults(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:1", time.Second)

	_, err := client.MyAppointments(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "Erreur lors du chargement des rendez-vous", api.MessageOr(err, "Erreur lors du chargement des rendez-vous"))
	assert.Equal(t, "Une erreur est survenue.", api.TextOr(err, "Une erreur est survenue."))
	assert.False(t, api.IsUnauthorized(err))
}
