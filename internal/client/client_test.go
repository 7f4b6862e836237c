package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"exam_client/internal/config"
	"exam_client/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 5})
	require.NoError(t, err)
	return c, srv
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "正常地址", baseURL: "http://127.0.0.1:5000/"},
		{name: "缺少协议", baseURL: "127.0.0.1:5000", wantErr: true},
		{name: "空地址", baseURL: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(config.BackendConfig{BaseURL: tc.baseURL})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "http://127.0.0.1:5000", c.BaseURL())
		})
	}
}

func TestClient_RandomQuestions(t *testing.T) {
	testCases := []struct {
		name       string
		handler    http.HandlerFunc
		wantLen    int
		wantStatus int
		wantMsg    string
	}{
		{
			name: "成功",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/questions/random", r.URL.Path)
				assert.NotEmpty(t, r.Header.Get(headerRequestID))
				writeJSON(w, http.StatusOK, map[string]any{
					"questions": []model.Question{
						{ID: 1, QuestionType: model.Single, QuestionText: "q1", OptionA: "a", CorrectAnswer: "A"},
						{ID: 2, QuestionType: model.Judge, QuestionText: "q2", CorrectAnswer: model.JudgeTrue},
					},
					"total": 2,
				})
			},
			wantLen: 2,
		},
		{
			name: "后端返回错误信息",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "未登录"})
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "未登录",
		},
		{
			name: "后端没有错误信息时使用默认提示",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = io.WriteString(w, "<html>boom</html>")
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "开始考试失败",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, tc.handler)
			qs, err := c.RandomQuestions(context.Background())
			if tc.wantStatus != 0 {
				var se *ServiceError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tc.wantStatus, se.Status)
				assert.Equal(t, tc.wantMsg, se.Message)
				assert.Equal(t, OpRandomQuestions, se.Op)
				return
			}
			require.NoError(t, err)
			assert.Len(t, qs, tc.wantLen)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(config.BackendConfig{BaseURL: url, TimeoutSeconds: 1})
	require.NoError(t, err)
	_, err = c.RandomQuestions(context.Background())
	assert.True(t, IsTransport(err))
	assert.False(t, IsUnauthorized(err))
}

func TestClient_MalformedBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "{not json")
	}))
	_, err := c.QuestionStats(context.Background())
	assert.True(t, IsTransport(err))
}

func TestClient_Timeout(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	c.SetTimeout(50 * time.Millisecond)
	_, err := c.Profile(context.Background())
	assert.True(t, IsTransport(err))
	assert.Error(t, c.Ping(context.Background()))
}

func TestClient_ZeroTimeoutWaits(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"id": 1, "username": "admin"}})
	}))
	c.SetTimeout(0)
	assert.Equal(t, time.Duration(0), c.Timeout())

	user, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestClient_SessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Username != "admin" || body.Password != "admin123" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "用户名或密码错误"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s1", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "登录成功",
			"user":    model.User{ID: 1, Username: "admin", Role: model.RoleAdmin},
		})
	})
	mux.HandleFunc("/api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("session")
		if err != nil || ck.Value != "s1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "未登录"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": model.User{ID: 1, Username: "admin", Role: model.RoleAdmin}})
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	_, err := c.Profile(ctx)
	assert.True(t, IsUnauthorized(err))
	assert.NoError(t, c.Ping(ctx))

	_, err = c.Login(ctx, "admin", "bad")
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "用户名或密码错误", se.Message)

	u, err := c.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	u, err = c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
}

func TestClient_ListQuestions(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/questions", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		assert.Equal(t, "multiple", r.URL.Query().Get("type"))
		assert.Equal(t, "网络", r.URL.Query().Get("search"))
		writeJSON(w, http.StatusOK, map[string]any{
			"questions":    []model.Question{{ID: 7, QuestionType: model.Multiple}},
			"total":        1,
			"pages":        1,
			"current_page": 1,
		})
	}))
	page, err := c.ListQuestions(context.Background(), model.QuestionQuery{Type: model.Multiple, Search: "网络"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(7), page.Items[0].ID)
}

func TestClient_ImportExcel(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/import-excel", r.URL.Path)
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "bank.xlsx", hdr.Filename)
		assert.Equal(t, "payload", string(data))
		writeJSON(w, http.StatusOK, model.ImportResult{
			Message:         "导入完成！成功导入 3 道题目",
			ImportedCount:   3,
			SheetsProcessed: []string{"Sheet1: 3题"},
		})
	}))
	res, err := c.ImportExcel(context.Background(), "bank.xlsx", stringReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.ImportedCount)
	assert.Equal(t, []string{"Sheet1: 3题"}, res.SheetsProcessed)
}

func TestClient_WrongQuestions(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/wrong-questions":
			assert.Equal(t, "false", r.URL.Query().Get("show_mastered"))
			writeJSON(w, http.StatusOK, map[string]any{
				"wrong_questions": []model.WrongQuestion{{ID: 3, QuestionID: 9, WrongCount: 2,
					Question: &model.Question{ID: 9, QuestionText: "q"}}},
				"total": 1,
			})
		case "/api/wrong-questions/3/master":
			assert.Equal(t, http.MethodPost, r.Method)
			writeJSON(w, http.StatusOK, map[string]string{"message": "已标记为掌握"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	ctx := context.Background()
	page, err := c.ListWrongQuestions(ctx, 0, 0, false)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(9), page.Items[0].Question.ID)
	assert.NoError(t, c.MarkMastered(ctx, 3))
	assert.Equal(t, http.StatusNotFound, statusOf(c.MarkMastered(ctx, 4)))
}
