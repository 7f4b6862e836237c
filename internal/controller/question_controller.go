package controller

import (
	"exam_client/internal/model"
	"exam_client/internal/service"
	"exam_client/internal/util"

	"github.com/gin-gonic/gin"
)

// QuestionController 管理员的题库管理
type QuestionController struct {
	QuestionService *service.QuestionService
	UserService     *service.UserService
}

func NewQuestionController(questionService *service.QuestionService, userService *service.UserService) *QuestionController {
	return &QuestionController{
		QuestionService: questionService,
		UserService:     userService,
	}
}

// Overview godoc
// @Summary 管理后台概览
// @Description 题库统计、第一页用户和第一页题目
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Overview}
// @Router /api/admin/overview [get]
func (c *QuestionController) Overview(ctx *gin.Context) {
	ov, err := c.QuestionService.Overview(ctx.Request.Context(), c.UserService)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, ov)
}

// List godoc
// @Summary 题目列表
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Param type query string false "题型 single/multiple/judge"
// @Param search query string false "题目关键词"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	page, perPage := pageParams(ctx)
	res, err := c.QuestionService.List(ctx.Request.Context(), model.QuestionQuery{
		Page:    page,
		PerPage: perPage,
		Type:    model.QuestionType(ctx.Query("type")),
		Search:  ctx.Query("search"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, service.ToPageResponse(res))
}

// Add godoc
// @Summary 新增题目
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.QuestionInput true "题目"
// @Success 201 {object} util.Response{data=service.QuestionView}
// @Router /api/admin/questions [post]
func (c *QuestionController) Add(ctx *gin.Context) {
	var req model.QuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	q, err := c.QuestionService.Add(ctx.Request.Context(), req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// Update godoc
// @Summary 修改题目
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目 ID"
// @Param body body model.QuestionInput true "需要修改的字段"
// @Success 200 {object} util.Response{data=service.QuestionView}
// @Router /api/admin/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req model.QuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	q, err := c.QuestionService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// Delete godoc
// @Summary 删除题目
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目 ID"
// @Param confirm query bool true "确认删除"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if !confirmed(ctx) {
		handleError(ctx, util.ErrConfirmRequired)
		return
	}
	if err := c.QuestionService.Delete(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}
	util.SuccessMsg(ctx, "题目删除成功", nil)
}

// Clear godoc
// @Summary 清空题库
// @Description 需要 confirm=true，此操作不可撤销
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param confirm query bool true "确认清空"
// @Success 200 {object} util.Response{data=client.ClearResult}
// @Router /api/admin/questions/clear [post]
func (c *QuestionController) Clear(ctx *gin.Context) {
	if !confirmed(ctx) {
		handleError(ctx, util.ErrConfirmRequired)
		return
	}
	res, err := c.QuestionService.Clear(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.SuccessMsg(ctx, res.Message, res)
}

// Stats godoc
// @Summary 题库统计
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.QuestionStats}
// @Router /api/admin/questions/stats [get]
func (c *QuestionController) Stats(ctx *gin.Context) {
	st, err := c.QuestionService.Stats(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, st)
}
