package middleware

import (
	"strings"

	"exam_client/internal/config"
	"exam_client/internal/model"
	"exam_client/internal/util"
	"exam_client/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionUser 后端确认过的当前登录用户
type SessionUser interface {
	CurrentUser() (model.User, bool)
}

func tokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
			return strings.TrimSpace(token)
		}
	}
	if token, err := c.Cookie(util.TokenCookie); err == nil && token != "" {
		return token
	}
	return c.Query(util.TokenQuery)
}

// AuthMiddleware 校验 UI 令牌，且令牌中的用户必须仍是当前登录用户。
// 退出登录或换人登录之后，旧令牌全部失效
func AuthMiddleware(cfg *config.Config, session SessionUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			util.Unauthorized(c, util.ErrNotLoggedIn.Error())
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("invalid ui token", zap.Error(err))
			util.Unauthorized(c, util.ErrNotLoggedIn.Error())
			c.Abort()
			return
		}

		user, ok := session.CurrentUser()
		if !ok || user.ID != claims.UserID {
			util.Unauthorized(c, util.ErrSessionMismatch.Error())
			c.Abort()
			return
		}
		// 角色以后端最新资料为准
		claims.Role = user.Role

		c.Set(util.ContextUserKey, claims)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c, util.ErrNotLoggedIn.Error())
			c.Abort()
			return
		}
		if user.Role != model.RoleAdmin {
			util.Forbidden(c, util.ErrPermissionDenied.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionExpirer 后端会话失效时清理本地状态
type SessionExpirer interface {
	Expire()
}

// SessionGuard 已登录的请求处理完成后如果后端返回过 401，说明后端会话已失效。
// 未携带有效令牌的请求(例如密码错误的登录)不影响当前会话
func SessionGuard(expirer SessionExpirer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.GetBool(util.BackendUnauthorizedKey) && util.GetUserFromContext(c) != nil {
			logger.Log.Info("backend session expired", zap.String("path", c.Request.URL.Path))
			expirer.Expire()
		}
	}
}
