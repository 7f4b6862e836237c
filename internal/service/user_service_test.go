package service

import (
	"context"
	"net/http"
	"testing"

	"exam_client/internal/model"
	"exam_client/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Validation(t *testing.T) {
	fb := newFakeBackend()
	c := fb.client(t)
	auth := NewAuthService(c, testConfig())
	auth.SetUser(model.User{ID: 1, Username: "admin", Role: model.RoleAdmin})
	svc := NewUserService(c, auth)
	ctx := context.Background()

	testCases := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name:    "修改密码缺少字段",
			call:    func() error { return svc.ChangePassword(ctx, "", "123456", "123456") },
			wantErr: util.ErrMissingFields,
		},
		{
			name:    "两次新密码不一致",
			call:    func() error { return svc.ChangePassword(ctx, "old", "123456", "654321") },
			wantErr: util.ErrPasswordMismatch,
		},
		{
			name:    "新密码太短",
			call:    func() error { return svc.ChangePassword(ctx, "old", "12345", "12345") },
			wantErr: util.ErrNewPasswordShort,
		},
		{
			name: "创建用户缺少密码",
			call: func() error {
				_, err := svc.CreateUser(ctx, model.UserCreate{Username: "u"})
				return err
			},
			wantErr: util.ErrUserFieldsRequired,
		},
		{
			name:    "不能删除自己",
			call:    func() error { return svc.DeleteUser(ctx, 1) },
			wantErr: util.ErrDeleteSelf,
		},
		{
			name:    "重置密码太短",
			call:    func() error { return svc.ResetPassword(ctx, 2, "123") },
			wantErr: util.ErrPasswordShort,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, util.IsInvalidInput(err))
		})
	}
	assert.Equal(t, int32(0), fb.calls.Load())
}

func TestUserService_UpdateProfileSyncsAuth(t *testing.T) {
	fb := newFakeBackend()
	fb.mux.HandleFunc("/api/users/7", func(w http.ResponseWriter, r *http.Request) {
		var upd model.UserUpdate
		require.NoError(t, decodeBody(r, &upd))
		assert.Empty(t, upd.Role)
		writeJSON(w, http.StatusOK, map[string]any{
			"user": model.User{ID: 7, Username: upd.Username, Email: upd.Email, Role: model.RoleUser},
		})
	})
	c := fb.client(t)
	auth := NewAuthService(c, testConfig())
	auth.SetUser(model.User{ID: 7, Username: "old", Role: model.RoleUser})
	svc := NewUserService(c, auth)

	user, err := svc.UpdateProfile(context.Background(), model.UserUpdate{Username: " new ", Email: "n@x.com", Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "new", user.Username)
	cur, _ := auth.CurrentUser()
	assert.Equal(t, "new", cur.Username)
	assert.Equal(t, model.RoleUser, cur.Role)
}

func TestUserService_ListUsers(t *testing.T) {
	fb := newFakeBackend()
	fb.handle("/api/users", http.StatusOK, map[string]any{
		"users": []model.User{
			{ID: 1, Username: "admin", Role: model.RoleAdmin},
			{ID: 2, Username: "alice", Role: model.RoleUser},
		},
		"total": 2, "pages": 1, "current_page": 1,
	})
	c := fb.client(t)
	svc := NewUserService(c, NewAuthService(c, testConfig()))

	page, err := svc.ListUsers(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "管理员", page.Items[0].RoleText)
	assert.Equal(t, "普通用户", page.Items[1].RoleText)
}
