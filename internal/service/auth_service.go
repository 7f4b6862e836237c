package service

import (
	"context"
	"strings"
	"sync"

	"exam_client/internal/client"
	"exam_client/internal/config"
	"exam_client/internal/model"
	"exam_client/internal/util"
	"exam_client/pkg/logger"

	"go.uber.org/zap"
)

// SessionResetter 登录用户变化时需要丢弃的会话状态
type SessionResetter interface {
	Reset()
}

// AuthService 当前登录用户的唯一来源。后端会话 cookie 由 client 持有，
// 这里只缓存后端确认过的用户信息
type AuthService struct {
	Client *client.Client
	Cfg    *config.Config

	mu      sync.RWMutex
	user    *model.User
	session SessionResetter
}

func NewAuthService(c *client.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		Client: c,
		Cfg:    cfg,
	}
}

// AttachSession 绑定随登录状态一起清空的会话，通常是考试控制器
func (s *AuthService) AttachSession(r SessionResetter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = r
}

// Login 登录后端并签发 UI 令牌。换了用户时丢弃上一位用户的考试
func (s *AuthService) Login(ctx context.Context, username, password string) (model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return model.User{}, "", util.ErrMissingCredentials
	}

	user, err := s.Client.Login(ctx, username, password)
	if err != nil {
		logger.Log.Info("login failed", zap.String("username", username), zap.Error(err))
		return model.User{}, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return model.User{}, "", err
	}

	s.mu.Lock()
	changed := s.user == nil || s.user.ID != user.ID
	s.user = &user
	session := s.session
	s.mu.Unlock()

	if changed && session != nil {
		session.Reset()
	}
	logger.Log.Info("user logged in", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, token, nil
}

// Register 注册普通用户，不改变当前登录状态
func (s *AuthService) Register(ctx context.Context, username, password, email string) (model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return model.User{}, util.ErrUserFieldsRequired
	}
	return s.Client.Register(ctx, username, password, strings.TrimSpace(email))
}

// Logout 无论后端是否成功都清空本地登录状态
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.Client.Logout(ctx)
	s.clear()
	if err != nil {
		logger.Log.Warn("backend logout failed", zap.Error(err))
	}
	return err
}

// Restore 启动时用已有的后端会话恢复登录状态，未登录不算错误
func (s *AuthService) Restore(ctx context.Context) (model.User, bool, error) {
	user, err := s.Client.Profile(ctx)
	if err != nil {
		if client.IsUnauthorized(err) {
			s.clear()
			return model.User{}, false, nil
		}
		return model.User{}, false, err
	}
	s.SetUser(user)
	return user, true, nil
}

// SetUser 资料更新后同步缓存的用户信息
func (s *AuthService) SetUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

func (s *AuthService) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *AuthService) IsAdmin() bool {
	u, ok := s.CurrentUser()
	return ok && u.IsAdmin()
}

// Expire 后端返回 401 时调用，本地状态随之失效
func (s *AuthService) Expire() {
	s.clear()
}

func (s *AuthService) clear() {
	s.mu.Lock()
	s.user = nil
	session := s.session
	s.mu.Unlock()
	if session != nil {
		session.Reset()
	}
}
