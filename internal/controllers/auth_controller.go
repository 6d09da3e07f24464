package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sara-web/internal/api"
	"sara-web/internal/middleware"
	"sara-web/internal/models"
	"sara-web/internal/service"
	"sara-web/internal/session"
)

const (
	loginErrorMessage    = "Email ou mot de passe incorrect"
	registerErrorMessage = "Erreur lors de la création du compte"
	registeredMessage    = "Compte créé. Un email de confirmation vous a été envoyé."
)

type AuthController struct {
	authService service.AuthService
	pages       *Pages
	log         logrus.FieldLogger
}

func NewAuthController(authService service.AuthService, pages *Pages, log logrus.FieldLogger) *AuthController {
	return &AuthController{
		authService: authService,
		pages:       pages,
		log:         log,
	}
}

// ShowLogin handles GET /login
func (ac *AuthController) ShowLogin(c *gin.Context) {
	ac.pages.Render(c, http.StatusOK, "login.html", "Connexion", gin.H{
		"Form": models.LoginForm{},
	})
}

// Login handles POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if errs := bindForm(c, &form); !errs.Valid() {
		form.Password = ""
		ac.pages.Render(c, http.StatusBadRequest, "login.html", "Connexion", gin.H{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	req := models.AuthRequest{Email: form.Email, Password: form.Password}
	if _, err := ac.authService.Login(c.Request.Context(), middleware.SessionID(c), &req); err != nil {
		ac.log.WithError(err).Warn("Login failed")
		form.Password = ""
		ac.pages.Render(c, errorStatus(err), "login.html", "Connexion", gin.H{
			"Form":  form,
			"Error": api.MessageOr(err, loginErrorMessage),
		})
		return
	}

	ac.pages.Redirect(c, "/home")
}

// ShowRegister handles GET /register
func (ac *AuthController) ShowRegister(c *gin.Context) {
	ac.pages.Render(c, http.StatusOK, "register.html", "Inscription", gin.H{
		"Form": models.RegisterForm{},
	})
}

// Register handles POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var form models.RegisterForm
	if errs := bindForm(c, &form); !errs.Valid() {
		form.Password = ""
		ac.pages.Render(c, http.StatusBadRequest, "register.html", "Inscription", gin.H{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	req := models.RegisterRequest{
		Nom:      form.Nom,
		Prenom:   form.Prenom,
		Email:    form.Email,
		Password: form.Password,
	}
	if _, err := ac.authService.Register(c.Request.Context(), middleware.SessionID(c), &req); err != nil {
		ac.log.WithError(err).Warn("Registration failed")
		form.Password = ""
		ac.pages.Render(c, errorStatus(err), "register.html", "Inscription", gin.H{
			"Form":  form,
			"Error": api.MessageOr(err, registerErrorMessage),
		})
		return
	}

	ac.pages.Flash(c, session.FlashSuccess, registeredMessage)
	ac.pages.Redirect(c, "/login")
}

// Logout handles POST /logout
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.authService.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		ac.log.WithError(err).Error("Failed to clear session token")
	}
	ac.pages.Redirect(c, "/login")
}
