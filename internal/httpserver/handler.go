package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	adminHTTP "eva-assistant/internal/admin/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts the WhatsApp webhook and the admin API.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	srv.gin.GET("/webhook", srv.webhookHandler.HandleVerify)
	srv.gin.POST("/webhook", srv.webhookHandler.HandleWebhook)
	srv.l.Infof(ctx, "WhatsApp webhook routes registered at /webhook")

	if srv.adminUC != nil {
		adminHTTP.RegisterRoutes(srv.gin.Group("/admin"), adminHTTP.New(srv.l, srv.adminUC))
		srv.l.Infof(ctx, "Admin API registered at /admin")
	} else {
		srv.l.Infof(ctx, "Admin usecase not configured, skipping admin routes")
	}
}
