package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the bare page shells the route gate navigates between.
// Layout and styling are intentionally minimal; the pages talk to the API.
type PageHandler struct {
	AppName string
}

func NewPageHandler(appName string) *PageHandler {
	return &PageHandler{AppName: appName}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"App": h.AppName})
}

func (h *PageHandler) Browse(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"App": h.AppName})
}

func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"App": h.AppName})
}

func (h *PageHandler) Register(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"App": h.AppName})
}
