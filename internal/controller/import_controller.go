package controller

import (
	"io"
	"net/http"

	"exam_client/internal/service"
	"exam_client/internal/util"

	"github.com/gin-gonic/gin"
)

// 题库文件上限
const maxUploadBytes = 32 << 20

type ImportController struct {
	ImportService *service.ImportService
}

func NewImportController(s *service.ImportService) *ImportController {
	return &ImportController{ImportService: s}
}

func readUpload(ctx *gin.Context) (string, []byte, bool) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxUploadBytes)
	fh, err := ctx.FormFile("file")
	if err != nil {
		handleError(ctx, util.ErrNoFile)
		return "", nil, false
	}
	f, err := fh.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return "", nil, false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		util.LogInternalError(ctx, err)
		return "", nil, false
	}
	return fh.Filename, data, true
}

// Preview godoc
// @Summary 预览题库文件
// @Description 在本地解析 .xlsx，展示每个工作表识别出的题目数量与题型，不会导入
// @Tags 管理
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Excel 文件"
// @Success 200 {object} util.Response{data=service.ImportPreview}
// @Router /api/admin/import/preview [post]
func (c *ImportController) Preview(ctx *gin.Context) {
	name, data, ok := readUpload(ctx)
	if !ok {
		return
	}
	p, err := c.ImportService.Preview(name, data)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// Upload godoc
// @Summary 导入题库
// @Tags 管理
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Excel 文件(.xlsx, .xls)"
// @Success 200 {object} util.Response{data=model.ImportResult}
// @Router /api/admin/import [post]
func (c *ImportController) Upload(ctx *gin.Context) {
	name, data, ok := readUpload(ctx)
	if !ok {
		return
	}
	res, err := c.ImportService.Upload(ctx.Request.Context(), name, data)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.SuccessMsg(ctx, res.Message, res)
}

// Log godoc
// @Summary 导入日志
// @Description 本次运行期间的导入记录，最新的在前
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.ImportLogEntry}
// @Router /api/admin/import/log [get]
func (c *ImportController) Log(ctx *gin.Context) {
	util.Success(ctx, c.ImportService.Log())
}
