package routes

import (
	"fabar_drinks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuoteForm = "/quote-form"
	PathSessions  = "/sessions"
)

func addPageRoutes(rg *gin.RouterGroup, h *handlers.PageHandler) {
	rg.GET("/", h.Show)
	rg.POST("/solicitacao", h.Submit)
	rg.POST("/nova-solicitacao", h.Restart)
}

func addQuoteFormRoutes(rg *gin.RouterGroup, h *handlers.QuoteFormHandler) {
	quoteForm := rg.Group(PathQuoteForm)
	{
		quoteForm.GET("/options", h.GetOptions)
		quoteForm.POST("/preview", h.Preview)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:id", h.GetSession)
		sessions.PUT("/:id/fields/:field", h.SetField)
		sessions.POST("/:id/sets/:field/toggle", h.ToggleSetMember)
		sessions.PUT("/:id/choices/:field", h.SelectSingle)
		sessions.POST("/:id/submit", h.Submit)
		sessions.POST("/:id/restart", h.Restart)
	}
}
