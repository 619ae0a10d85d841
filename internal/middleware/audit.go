package middleware

import (
	"github.com/REVSSPACE/mclp-backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Audit appends one AuditLog row per authenticated request after it
// completes. Failures to write the row never affect the response.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		user := CurrentUser(c)
		if user == nil {
			return
		}

		entry := models.AuditLog{
			UserID:    &user.ID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
