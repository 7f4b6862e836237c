package controller

import (
	"net/http"
	"strconv"

	"exam_client/internal/client"
	"exam_client/internal/exam"
	"exam_client/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

var examStatus = map[error]int{
	exam.ErrNotAuthenticated:   http.StatusUnauthorized,
	exam.ErrNoActiveSession:    http.StatusConflict,
	exam.ErrSessionCompleted:   http.StatusConflict,
	exam.ErrPositionOutOfRange: http.StatusBadRequest,
	exam.ErrInvalidOption:      http.StatusBadRequest,
	exam.ErrInvalidDelta:       http.StatusBadRequest,
	exam.ErrNotConfirmed:       http.StatusBadRequest,
	exam.ErrNoQuestions:        http.StatusNotFound,
	exam.ErrSessionReset:       http.StatusConflict,
}

// handleError 把业务错误映射成统一响应
func handleError(ctx *gin.Context, err error) {
	for target, code := range examStatus {
		if errors.Is(err, target) {
			util.Error(ctx, code, target.Error())
			return
		}
	}

	var se *client.ServiceError
	switch {
	case util.IsInvalidInput(err):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrNotLoggedIn), errors.Is(err, util.ErrSessionMismatch):
		util.Unauthorized(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	case errors.As(err, &se):
		if se.Status == http.StatusUnauthorized {
			ctx.Set(util.BackendUnauthorizedKey, true)
		}
		util.Error(ctx, se.Status, se.Message)
	case client.IsTransport(err):
		util.BadGateway(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// confirmed 破坏性操作需要显式带上 confirm=true
func confirmed(ctx *gin.Context) bool {
	ok, _ := strconv.ParseBool(ctx.Query("confirm"))
	return ok
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return 0, false
	}
	return id, true
}

func pageParams(ctx *gin.Context) (int, int) {
	return util.AtoiDefault(ctx.Query("page"), 0), util.AtoiDefault(ctx.Query("per_page"), 0)
}
