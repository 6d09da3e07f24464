package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sara-web/internal/api"
	"sara-web/internal/middleware"
	"sara-web/internal/service"
	"sara-web/internal/session"
)

const flashContextKey = "flash"

// Pages renders templates with the data every page shares: login state,
// identity for the header, and the pending flash message.
type Pages struct {
	authService service.AuthService
	store       *session.Store
	log         logrus.FieldLogger
}

func NewPages(authService service.AuthService, store *session.Store, log logrus.FieldLogger) *Pages {
	return &Pages{
		authService: authService,
		store:       store,
		log:         log,
	}
}

// Render writes the named template. data may be nil.
func (p *Pages) Render(c *gin.Context, code int, name, title string, data gin.H) {
	ctx := c.Request.Context()
	sid := middleware.SessionID(c)

	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title

	errs, _ := data["Errors"].(FieldErrors)
	if errs == nil {
		errs = FieldErrors{}
		data["Errors"] = errs
	}
	if msg, ok := errs["form"]; ok && data["Error"] == nil {
		data["Error"] = msg
	}

	data["LoggedIn"] = p.authService.IsLoggedIn(ctx, sid)
	if claims, ok := p.authService.Identity(ctx, sid); ok {
		data["UserEmail"] = claims.Email()
	}

	data["Flash"] = p.TakeFlash(c)

	c.HTML(code, name, data)
}

// TakeFlash pops the session's pending flash, once per request. Handlers that
// wait on the backend before rendering take it first, so its lifetime does
// not run out during the call.
func (p *Pages) TakeFlash(c *gin.Context) *session.Flash {
	if v, ok := c.Get(flashContextKey); ok {
		f, _ := v.(*session.Flash)
		return f
	}

	f, err := p.store.PopFlash(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		p.log.WithError(err).Warn("Failed to read flash message")
	}
	c.Set(flashContextKey, f)
	return f
}

// Flash queues a message for the next page render of this session
func (p *Pages) Flash(c *gin.Context, kind session.FlashKind, message string) {
	f := session.Flash{Kind: kind, Message: message}
	if err := p.store.SetFlash(c.Request.Context(), middleware.SessionID(c), f, f.Lifetime()); err != nil {
		p.log.WithError(err).Warn("Failed to store flash message")
	}
}

// Redirect sends the browser to path with a GET
func (p *Pages) Redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, path)
}

// errorStatus is the status a page is rendered with after a failed backend call
func errorStatus(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
