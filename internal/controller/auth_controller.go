package controller

import (
	"net/http"

	"exam_client/internal/config"
	"exam_client/internal/service"
	"exam_client/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Cfg         *config.Config
}

func NewAuthController(authService *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		Cfg:         cfg,
	}
}

// LoginRequest 登录请求
// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest 注册请求
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Login godoc
// @Summary 登录
// @Description 登录后端并签发本地 UI 令牌，令牌同时写入 ui_token cookie
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "用户名和密码"
// @Success 200 {object} util.Response{data=object} "登录成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "用户名或密码错误"
// @Failure 502 {object} util.Response "网络错误"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(ctx, err)
		return
	}

	maxAge := int(c.Cfg.JWT.ExpireTime.Seconds())
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(util.TokenCookie, token, maxAge, "/", "", ctx.Request.TLS != nil, true)
	util.SuccessMsg(ctx, "登录成功", gin.H{
		"user":  service.NewUserView(user),
		"token": token,
	})
}

// Register godoc
// @Summary 注册
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "注册信息"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.AuthService.Register(ctx.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// Logout godoc
// @Summary 退出登录
// @Description 清空本地登录状态和进行中的考试，后端退出失败也会清空
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	err := c.AuthService.Logout(ctx.Request.Context())
	ctx.SetCookie(util.TokenCookie, "", -1, "/", "", ctx.Request.TLS != nil, true)
	if err != nil {
		util.Error(ctx, http.StatusBadGateway, "退出登录失败")
		return
	}
	util.SuccessMsg(ctx, "已退出登录", nil)
}

// Status godoc
// @Summary 登录状态
// @Description 返回后端会话对应的用户，不签发令牌
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Router /api/auth/status [get]
func (c *AuthController) Status(ctx *gin.Context) {
	user, ok := c.AuthService.CurrentUser()
	if !ok {
		util.Success(ctx, gin.H{"logged_in": false})
		return
	}
	util.Success(ctx, gin.H{"logged_in": true, "user": service.NewUserView(user)})
}
