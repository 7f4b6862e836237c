package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"exam_client/internal/model"
)

type usersPage struct {
	Users       []model.User `json:"users"`
	Total       int          `json:"total"`
	Pages       int          `json:"pages"`
	CurrentPage int          `json:"current_page"`
}

// CurrentUser /api/users/profile 直接返回用户对象
func (c *Client) CurrentUser(ctx context.Context) (model.User, error) {
	var u model.User
	err := c.call(ctx, OpCurrentUser, http.MethodGet, "/api/users/profile", nil, nil, &u)
	return u, err
}

func (c *Client) UpdateUser(ctx context.Context, id int64, upd model.UserUpdate) (model.User, error) {
	var resp userEnvelope
	err := c.call(ctx, OpUpdateUser, http.MethodPut, "/api/users/"+strconv.FormatInt(id, 10), nil, upd, &resp)
	return resp.User, err
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return c.call(ctx, OpChangePassword, http.MethodPost, "/api/users/change-password", nil, body, nil)
}

func (c *Client) ListUsers(ctx context.Context, page, perPage int) (model.Page[model.User], error) {
	var resp usersPage
	err := c.call(ctx, OpListUsers, http.MethodGet, "/api/users", pageQuery(page, perPage), nil, &resp)
	return model.Page[model.User]{
		Items:       resp.Users,
		Total:       resp.Total,
		Pages:       resp.Pages,
		CurrentPage: resp.CurrentPage,
	}, err
}

func (c *Client) CreateUser(ctx context.Context, in model.UserCreate) (model.User, error) {
	var resp userEnvelope
	err := c.call(ctx, OpCreateUser, http.MethodPost, "/api/users", nil, in, &resp)
	return resp.User, err
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.call(ctx, OpDeleteUser, http.MethodDelete, "/api/users/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	body := map[string]string{"new_password": newPassword}
	return c.call(ctx, OpResetPassword, http.MethodPost,
		"/api/users/"+strconv.FormatInt(id, 10)+"/reset-password", nil, body, nil)
}

func pageQuery(page, perPage int) url.Values {
	if page <= 0 {
		page = model.DefaultPage
	}
	if perPage <= 0 {
		perPage = model.DefaultPerPage
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return q
}
