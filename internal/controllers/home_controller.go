package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	pages *Pages
}

func NewHomeController(pages *Pages) *HomeController {
	return &HomeController{pages: pages}
}

// Home handles GET /home
func (hc *HomeController) Home(c *gin.Context) {
	hc.pages.Render(c, http.StatusOK, "home.html", "Accueil", nil)
}

// Root handles GET / by sending the browser to /home
func (hc *HomeController) Root(c *gin.Context) {
	hc.pages.Redirect(c, "/home")
}
