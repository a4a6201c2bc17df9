package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID برای هر درخواست یک شناسه ردیابی می‌گذارد؛ اگر کلاینت
// خودش فرستاده باشد همان نگه داشته می‌شود
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Set("requestID", requestID)
		c.Next()
	}
}
