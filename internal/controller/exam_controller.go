package controller

import (
	"strconv"

	"exam_client/internal/exam"
	"exam_client/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Exam *exam.Controller
}

func NewExamController(ctl *exam.Controller) *ExamController {
	return &ExamController{Exam: ctl}
}

// SelectRequest 点击一个选项
// swagger:model SelectRequest
type SelectRequest struct {
	Position *int   `json:"position" binding:"required"`
	Value    string `json:"value" binding:"required"`
}

// AdvanceRequest 上一题传 -1，下一题传 1
// swagger:model AdvanceRequest
type AdvanceRequest struct {
	Delta int `json:"delta" binding:"required,oneof=-1 1"`
}

func respondView(ctx *gin.Context, v exam.View, err error) {
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, v)
}

// Start godoc
// @Summary 开始考试
// @Description 从后端随机抽题开始新考试，之前的作答全部丢弃；抽题失败时保留原考试
// @Tags 考试
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=exam.View}
// @Failure 401 {object} util.Response "未登录"
// @Failure 502 {object} util.Response "网络错误"
// @Router /api/exam/start [post]
func (c *ExamController) Start(ctx *gin.Context) {
	v, err := c.Exam.Start(ctx.Request.Context())
	respondView(ctx, v, err)
}

// Current godoc
// @Summary 当前考试视图
// @Tags 考试
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=exam.View}
// @Router /api/exam [get]
func (c *ExamController) Current(ctx *gin.Context) {
	v, err := c.Exam.View()
	respondView(ctx, v, err)
}

// Render godoc
// @Summary 渲染指定题目
// @Description 不改变当前题号，交卷后可用于回看
// @Tags 考试
// @Produce json
// @Security ApiKeyAuth
// @Param position path int true "题目位置，从 0 开始"
// @Success 200 {object} util.Response{data=exam.View}
// @Failure 400 {object} util.Response "题号超出范围"
// @Router /api/exam/questions/{position} [get]
func (c *ExamController) Render(ctx *gin.Context) {
	pos, err := strconv.Atoi(ctx.Param("position"))
	if err != nil {
		handleError(ctx, exam.ErrPositionOutOfRange)
		return
	}
	v, err := c.Exam.RenderAt(pos)
	respondView(ctx, v, err)
}

// Select godoc
// @Summary 选择选项
// @Description 单选/判断题覆盖原答案，多选题切换该选项
// @Tags 考试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SelectRequest true "题目位置与选项值"
// @Success 200 {object} util.Response{data=exam.View}
// @Failure 409 {object} util.Response "考试已提交"
// @Router /api/exam/answers [post]
func (c *ExamController) Select(ctx *gin.Context) {
	var req SelectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	v, err := c.Exam.Select(*req.Position, req.Value)
	respondView(ctx, v, err)
}

// Advance godoc
// @Summary 上一题/下一题
// @Tags 考试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AdvanceRequest true "移动方向"
// @Success 200 {object} util.Response{data=exam.View}
// @Router /api/exam/advance [post]
func (c *ExamController) Advance(ctx *gin.Context) {
	var req AdvanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	v, err := c.Exam.Advance(req.Delta)
	respondView(ctx, v, err)
}

// Submit godoc
// @Summary 交卷
// @Description 需要 confirm=true，提交后无法修改答案。成绩只在本地计算
// @Tags 考试
// @Produce json
// @Security ApiKeyAuth
// @Param confirm query bool true "确认提交"
// @Success 200 {object} util.Response{data=exam.View}
// @Failure 400 {object} util.Response "需要确认"
// @Router /api/exam/submit [post]
func (c *ExamController) Submit(ctx *gin.Context) {
	v, err := c.Exam.Submit(confirmed(ctx))
	respondView(ctx, v, err)
}

// Abandon godoc
// @Summary 放弃当前考试
// @Tags 考试
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/exam [delete]
func (c *ExamController) Abandon(ctx *gin.Context) {
	c.Exam.Reset()
	util.Success(ctx, exam.View{Phase: exam.PhaseIdle})
}
