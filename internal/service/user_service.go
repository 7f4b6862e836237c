package service

import (
	"context"
	"strings"

	"exam_client/internal/client"
	"exam_client/internal/model"
	"exam_client/internal/util"
	"exam_client/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
	"go.uber.org/zap"
)

// UserView 带角色展示名的用户
type UserView struct {
	model.User
	RoleText string `json:"role_text"`
}

func NewUserView(u model.User) UserView {
	return UserView{User: u, RoleText: u.Role.Text()}
}

// UserService 个人资料与管理员的用户管理
type UserService struct {
	Client *client.Client
	Auth   *AuthService
}

func NewUserService(c *client.Client, auth *AuthService) *UserService {
	return &UserService{
		Client: c,
		Auth:   auth,
	}
}

// Profile 从后端重新加载当前用户资料
func (s *UserService) Profile(ctx context.Context) (model.User, error) {
	user, err := s.Client.CurrentUser(ctx)
	if err != nil {
		return model.User{}, err
	}
	s.Auth.SetUser(user)
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, upd model.UserUpdate) (model.User, error) {
	current, ok := s.Auth.CurrentUser()
	if !ok {
		return model.User{}, util.ErrNotLoggedIn
	}
	// 普通用户不能通过资料接口修改角色
	upd.Role = ""
	upd.Username = strings.TrimSpace(upd.Username)
	upd.Email = strings.TrimSpace(upd.Email)

	user, err := s.Client.UpdateUser(ctx, current.ID, upd)
	if err != nil {
		return model.User{}, err
	}
	s.Auth.SetUser(user)
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) error {
	if oldPassword == "" || newPassword == "" || confirm == "" {
		return util.ErrMissingFields
	}
	if newPassword != confirm {
		return util.ErrPasswordMismatch
	}
	if len(newPassword) < util.MinPasswordLength {
		return util.ErrNewPasswordShort
	}
	return s.Client.ChangePassword(ctx, oldPassword, newPassword)
}

func (s *UserService) ListUsers(ctx context.Context, page, perPage int) (model.Page[UserView], error) {
	res, err := s.Client.ListUsers(ctx, page, perPage)
	if err != nil {
		return model.Page[UserView]{}, err
	}
	return model.Page[UserView]{
		Items:       slice.Map(res.Items, func(_ int, u model.User) UserView { return NewUserView(u) }),
		Total:       res.Total,
		Pages:       res.Pages,
		CurrentPage: res.CurrentPage,
	}, nil
}

func (s *UserService) CreateUser(ctx context.Context, in model.UserCreate) (model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Password == "" {
		return model.User{}, util.ErrUserFieldsRequired
	}
	if in.Role == "" {
		in.Role = model.RoleUser
	}
	user, err := s.Client.CreateUser(ctx, in)
	if err != nil {
		return model.User{}, err
	}
	logger.Log.Info("user created", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// UpdateUser 管理员修改任意用户；修改的是自己时同步登录状态
func (s *UserService) UpdateUser(ctx context.Context, id int64, upd model.UserUpdate) (model.User, error) {
	user, err := s.Client.UpdateUser(ctx, id, upd)
	if err != nil {
		return model.User{}, err
	}
	if current, ok := s.Auth.CurrentUser(); ok && current.ID == id {
		s.Auth.SetUser(user)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if current, ok := s.Auth.CurrentUser(); ok && current.ID == id {
		return util.ErrDeleteSelf
	}
	if err := s.Client.DeleteUser(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	if len(newPassword) < util.MinPasswordLength {
		return util.ErrPasswordShort
	}
	return s.Client.ResetPassword(ctx, id, newPassword)
}
