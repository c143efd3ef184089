package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/coradatalabs/cora_backend/appctx"
	"bitbucket.org/coradatalabs/cora_backend/config"
)

// Session is the redis-backed login state keyed by token.
type Session struct {
	CompanyId  int  `json:"company_id"`
	BorrowerId int  `json:"borrower_id"`
	Staff      bool `json:"staff"`
}

func SessionKey(token string) string {
	return "Session:" + token
}

func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("token")
		if token == "" {
			c.Next()
			return
		}
		var session Session
		exists, err := config.GetRedisObject(SessionKey(token), &session)
		if err != nil || !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := appctx.Set(c.Request.Context(), appctx.ContextKeyToken, token)
		ctx = appctx.Set(ctx, appctx.ContextKeyCompanyId, session.CompanyId)
		ctx = appctx.Set(ctx, appctx.ContextKeyBorrowerId, session.BorrowerId)
		ctx = appctx.Set(ctx, appctx.ContextKeyIsStaff, session.Staff)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
