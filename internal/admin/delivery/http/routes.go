package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the admin API. Login is public, everything
// else sits behind the bearer token middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/login", h.Login)

	authed := rg.Group("", h.AuthMiddleware())
	{
		authed.GET("/contacts", h.ListContacts)
		authed.GET("/chats/:session", h.SessionHistory)
		authed.GET("/users", h.ListUsers)
		authed.POST("/users", h.CreateUser)
		authed.DELETE("/users/:username", h.DeleteUser)
	}
}
