package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sara-web/internal/api"
	"sara-web/internal/models"
	"sara-web/internal/service"
)

const (
	missingTokenMessage     = "Token manquant dans l'URL."
	confirmErrorMessage     = "Erreur lors de la confirmation."
	genericErrorMessage     = "Une erreur est survenue."
	passwordMismatchMessage = "Les mots de passe ne correspondent pas."
)

// AccountController serves the pages reached from emails sent by the backend:
// email confirmation and password recovery. These endpoints answer in plain text.
type AccountController struct {
	authService service.AuthService
	pages       *Pages
	log         logrus.FieldLogger
}

func NewAccountController(authService service.AuthService, pages *Pages, log logrus.FieldLogger) *AccountController {
	return &AccountController{
		authService: authService,
		pages:       pages,
		log:         log,
	}
}

// ConfirmEmail handles GET /confirm-email?token=
func (ac *AccountController) ConfirmEmail(c *gin.Context) {
	tok := c.Query("token")
	if tok == "" {
		ac.pages.Render(c, http.StatusBadRequest, "confirm_email.html", "Confirmation", gin.H{
			"Success": false,
			"Message": missingTokenMessage,
		})
		return
	}

	msg, err := ac.authService.ConfirmEmail(c.Request.Context(), tok)
	if err != nil {
		ac.log.WithError(err).Warn("Email confirmation failed")
		ac.pages.Render(c, errorStatus(err), "confirm_email.html", "Confirmation", gin.H{
			"Success": false,
			"Message": api.TextOr(err, confirmErrorMessage),
		})
		return
	}

	ac.pages.Render(c, http.StatusOK, "confirm_email.html", "Confirmation", gin.H{
		"Success": true,
		"Message": msg,
	})
}

// ShowForgotPassword handles GET /forgot-password
func (ac *AccountController) ShowForgotPassword(c *gin.Context) {
	ac.pages.Render(c, http.StatusOK, "forgot_password.html", "Mot de passe oublié", gin.H{
		"Form": models.ForgotPasswordForm{},
	})
}

// ForgotPassword handles POST /forgot-password
func (ac *AccountController) ForgotPassword(c *gin.Context) {
	var form models.ForgotPasswordForm
	if errs := bindForm(c, &form); !errs.Valid() {
		ac.pages.Render(c, http.StatusBadRequest, "forgot_password.html", "Mot de passe oublié", gin.H{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	msg, err := ac.authService.ForgotPassword(c.Request.Context(), &models.ForgotPasswordRequest{Email: form.Email})
	if err != nil {
		ac.log.WithError(err).Warn("Password reset request failed")
		ac.pages.Render(c, errorStatus(err), "forgot_password.html", "Mot de passe oublié", gin.H{
			"Form":  form,
			"Error": api.TextOr(err, genericErrorMessage),
		})
		return
	}

	ac.pages.Render(c, http.StatusOK, "forgot_password.html", "Mot de passe oublié", gin.H{
		"Form":    models.ForgotPasswordForm{},
		"Message": msg,
	})
}

// ShowResetPassword handles GET /reset-password?token=
func (ac *AccountController) ShowResetPassword(c *gin.Context) {
	tok := c.Query("token")
	data := gin.H{
		"Token":   tok,
		"Success": false,
	}
	code := http.StatusOK
	if tok == "" {
		data["Error"] = missingTokenMessage
		code = http.StatusBadRequest
	}
	ac.pages.Render(c, code, "reset_password.html", "Nouveau mot de passe", data)
}

// ResetPassword handles POST /reset-password
func (ac *AccountController) ResetPassword(c *gin.Context) {
	var form models.ResetPasswordForm
	errs := bindForm(c, &form)

	data := gin.H{
		"Token":   form.Token,
		"Success": false,
	}
	if form.Token == "" {
		data["Error"] = missingTokenMessage
		ac.pages.Render(c, http.StatusBadRequest, "reset_password.html", "Nouveau mot de passe", data)
		return
	}
	if !errs.Valid() {
		data["Errors"] = errs
		ac.pages.Render(c, http.StatusBadRequest, "reset_password.html", "Nouveau mot de passe", data)
		return
	}
	if form.NewPassword != form.ConfirmPassword {
		data["Error"] = passwordMismatchMessage
		ac.pages.Render(c, http.StatusBadRequest, "reset_password.html", "Nouveau mot de passe", data)
		return
	}

	req := models.ResetPasswordRequest{Token: form.Token, NewPassword: form.NewPassword}
	msg, err := ac.authService.ResetPassword(c.Request.Context(), &req)
	if err != nil {
		ac.log.WithError(err).Warn("Password reset failed")
		data["Error"] = api.TextOr(err, genericErrorMessage)
		ac.pages.Render(c, errorStatus(err), "reset_password.html", "Nouveau mot de passe", data)
		return
	}

	data["Success"] = true
	data["Message"] = msg
	ac.pages.Render(c, http.StatusOK, "reset_password.html", "Nouveau mot de passe", data)
}
