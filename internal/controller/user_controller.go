package controller

import (
	"exam_client/internal/model"
	"exam_client/internal/service"
	"exam_client/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController 个人资料与管理员的用户管理
type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// ChangePasswordRequest 修改密码
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ResetPasswordRequest 管理员重置密码
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// GetProfile godoc
// @Summary 获取个人资料
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserView}
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, err := c.UserService.Profile(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, service.NewUserView(user))
}

// UpdateProfile godoc
// @Summary 更新个人资料
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.UserUpdate true "用户名与邮箱"
// @Success 200 {object} util.Response{data=service.UserView}
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req model.UserUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.UserService.UpdateProfile(ctx.Request.Context(), req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.SuccessMsg(ctx, "资料更新成功", service.NewUserView(user))
}

// ChangePassword godoc
// @Summary 修改密码
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ChangePasswordRequest true "原密码与新密码"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "两次输入的新密码不一致"
// @Router /api/profile/password [post]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.UserService.ChangePassword(ctx.Request.Context(), req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		handleError(ctx, err)
		return
	}
	util.SuccessMsg(ctx, "密码修改成功", nil)
}

// ListUsers godoc
// @Summary 用户列表
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, perPage := pageParams(ctx)
	res, err := c.UserService.ListUsers(ctx.Request.Context(), page, perPage)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, service.ToPageResponse(res))
}

// CreateUser godoc
// @Summary 创建用户
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.UserCreate true "用户信息"
// @Success 201 {object} util.Response{data=service.UserView}
// @Router /api/admin/users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req model.UserCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.UserService.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, service.NewUserView(user))
}

// UpdateUser godoc
// @Summary 修改用户
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户 ID"
// @Param body body model.UserUpdate true "用户信息"
// @Success 200 {object} util.Response{data=service.UserView}
// @Router /api/admin/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req model.UserUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.UserService.UpdateUser(ctx.Request.Context(), id, req)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, service.NewUserView(user))
}

// DeleteUser godoc
// @Summary 删除用户
// @Description 需要 confirm=true，不能删除自己
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户 ID"
// @Param confirm query bool true "确认删除"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if !confirmed(ctx) {
		handleError(ctx, util.ErrConfirmRequired)
		return
	}
	if err := c.UserService.DeleteUser(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}
	util.SuccessMsg(ctx, "用户删除成功", nil)
}

// ResetPassword godoc
// @Summary 重置用户密码
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户 ID"
// @Param body body ResetPasswordRequest true "新密码"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/reset-password [post]
func (c *UserController) ResetPassword(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.UserService.ResetPassword(ctx.Request.Context(), id, req.NewPassword); err != nil {
		handleError(ctx, err)
		return
	}
	util.SuccessMsg(ctx, "密码重置成功", nil)
}
