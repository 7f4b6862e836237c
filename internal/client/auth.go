package client

import (
	"context"
	"net/http"

	"exam_client/internal/model"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type userEnvelope struct {
	Message string     `json:"message"`
	User    model.User `json:"user"`
}

// Login 登录成功后后端会话 cookie 写入 jar
func (c *Client) Login(ctx context.Context, username, password string) (model.User, error) {
	var resp userEnvelope
	err := c.call(ctx, OpLogin, http.MethodPost, "/api/auth/login", nil,
		credentials{Username: username, Password: password}, &resp)
	return resp.User, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, OpLogout, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

func (c *Client) Register(ctx context.Context, username, password, email string) (model.User, error) {
	var resp userEnvelope
	err := c.call(ctx, OpRegister, http.MethodPost, "/api/auth/register", nil,
		credentials{Username: username, Password: password, Email: email}, &resp)
	return resp.User, err
}

// Profile 检查登录状态，未登录时返回 401 ServiceError
func (c *Client) Profile(ctx context.Context) (model.User, error) {
	var resp userEnvelope
	err := c.call(ctx, OpProfile, http.MethodGet, "/api/auth/profile", nil, nil, &resp)
	return resp.User, err
}

// Ping 后端可达即视为正常，401 等业务错误不算失败
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Profile(ctx)
	if err != nil && IsTransport(err) {
		return err
	}
	return nil
}
