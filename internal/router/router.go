package router

import (
	"net/http"
	"time"

	"github.com/REVSSPACE/mclp-backend/internal/config"
	"github.com/REVSSPACE/mclp-backend/internal/handler"
	"github.com/REVSSPACE/mclp-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup configures the Gin engine and the full API route table.
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "MCLP Backend is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// public
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// authenticated
	protected := api.Group("")
	protected.Use(
		middleware.Auth(cfg.JWT.Secret, db),
		middleware.Audit(db),
	)

	protected.GET("/me", handler.Me)

	fileHandler := handler.NewFileHandler(db)
	protected.GET("/files", fileHandler.List)
	protected.GET("/files/stats/dashboard", fileHandler.Dashboard)
	protected.GET("/files/:id", fileHandler.Get)
	protected.POST("/files", fileHandler.Create)
	protected.PUT("/files/:id", fileHandler.Update)
	protected.PUT("/files/:id/status", fileHandler.UpdateStatus)
	protected.PUT("/files/:id/handling-status", fileHandler.UpdateHandlingStatus)
	protected.DELETE("/files/:id", fileHandler.Delete)

	accountHandler := handler.NewAccountHandler(db)
	protected.GET("/accounts", accountHandler.List)
	protected.GET("/accounts/stats/summary", accountHandler.Summary)
	protected.GET("/accounts/:id", accountHandler.Get)
	protected.POST("/accounts", accountHandler.Create)
	protected.PUT("/accounts/:id", accountHandler.Update)
	protected.DELETE("/accounts/:id", accountHandler.Delete)

	documentHandler := handler.NewDocumentHandler(db, cfg.Upload.Dir, cfg.Upload.MaxUploadBytes())
	protected.GET("/documents", documentHandler.List)
	protected.GET("/documents/download/:id", documentHandler.Download)
	protected.GET("/documents/:id", documentHandler.Get)
	protected.POST("/documents/upload", documentHandler.Upload)
	protected.DELETE("/documents/:id", documentHandler.Delete)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.CSV)
	protected.GET("/export/xlsx", exportHandler.XLSX)

	return r
}
