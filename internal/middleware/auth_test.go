package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"exam_client/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type countingExpirer struct {
	calls int
}

func (e *countingExpirer) Expire() {
	e.calls++
}

func TestSessionGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name         string
		loggedIn     bool
		unauthorized bool
		wantExpire   int
	}{
		{name: "已登录且后端返回 401", loggedIn: true, unauthorized: true, wantExpire: 1},
		{name: "已登录且后端正常", loggedIn: true, unauthorized: false, wantExpire: 0},
		{name: "未登录请求的 401 不影响会话", loggedIn: false, unauthorized: true, wantExpire: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expirer := &countingExpirer{}
			router := gin.New()
			router.Use(SessionGuard(expirer))
			router.GET("/", func(c *gin.Context) {
				if tc.loggedIn {
					c.Set(util.ContextUserKey, &util.Claims{UserID: 1})
				}
				if tc.unauthorized {
					c.Set(util.BackendUnauthorizedKey, true)
					util.Unauthorized(c, "未登录")
					return
				}
				util.Success(c, nil)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tc.wantExpire, expirer.calls)
		})
	}
}
