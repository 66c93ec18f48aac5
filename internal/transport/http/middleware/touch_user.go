package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weiyuzhang/dealerhub/internal/repository"
)

// TouchUser runs after Auth. It upserts the authenticated identity into
// the users table so that externally-issued tokens always have a backing
// row.
func TouchUser(repo repository.UserRepository, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}
		if err := repo.Upsert(c.Request.Context(), sess.UserID, sess.Email); err != nil {
			logger.ErrorContext(c.Request.Context(), "touch user upsert", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": "服务器内部错误"})
			return
		}
		c.Next()
	}
}
