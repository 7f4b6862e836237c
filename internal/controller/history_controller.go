package controller

import (
	"strconv"

	"exam_client/internal/service"
	"exam_client/internal/util"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	HistoryService *service.HistoryService
}

func NewHistoryController(s *service.HistoryService) *HistoryController {
	return &HistoryController{HistoryService: s}
}

// Exams godoc
// @Summary 考试记录
// @Tags 记录
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/history/exams [get]
func (c *HistoryController) Exams(ctx *gin.Context) {
	page, perPage := pageParams(ctx)
	res, err := c.HistoryService.Exams(ctx.Request.Context(), page, perPage)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, service.ToPageResponse(res))
}

// WrongQuestions godoc
// @Summary 错题本
// @Tags 记录
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Param show_mastered query bool false "是否包含已掌握"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/history/wrong-questions [get]
func (c *HistoryController) WrongQuestions(ctx *gin.Context) {
	page, perPage := pageParams(ctx)
	showMastered, _ := strconv.ParseBool(ctx.Query("show_mastered"))
	res, err := c.HistoryService.WrongQuestions(ctx.Request.Context(), page, perPage, showMastered)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, service.ToPageResponse(res))
}

// MarkMastered godoc
// @Summary 标记错题已掌握
// @Tags 记录
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "错题 ID"
// @Success 200 {object} util.Response
// @Router /api/history/wrong-questions/{id}/master [post]
func (c *HistoryController) MarkMastered(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.HistoryService.MarkMastered(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}
	util.SuccessMsg(ctx, "已标记为掌握", nil)
}
