package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"exam_client/internal/client"
	"exam_client/internal/config"
	"exam_client/internal/exam"
	"exam_client/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t       *testing.T
	app     *App
	backend *http.ServeMux
	token   string
}

func newTestServer(t *testing.T, staticDir string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mux := http.NewServeMux()
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", Mode: gin.TestMode, StaticDir: staticDir},
		Backend: config.BackendConfig{BaseURL: backend.URL, TimeoutSeconds: 5},
		JWT:     config.JWTConfig{Secret: "router-test-secret", ExpireTime: time.Hour},
	}
	cl, err := client.New(cfg.Backend)
	require.NoError(t, err)

	return &testServer{t: t, app: build(cfg, cl, gin.New()), backend: mux}
}

func (s *testServer) do(method, path string, body any) (int, envelope) {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

func (s *testServer) login(user model.User) {
	s.t.Helper()
	code, env := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": user.Username, "password": "pw"})
	require.Equal(s.t, http.StatusOK, code, env.Message)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	s.token = data.Token
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

var (
	alice = model.User{ID: 1, Username: "alice", Role: model.RoleUser}
	root  = model.User{ID: 2, Username: "root", Role: model.RoleAdmin}
)

func (s *testServer) withUsers(users ...model.User) {
	s.backend.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		for _, u := range users {
			if u.Username == body["username"] {
				writeJSON(w, http.StatusOK, map[string]any{"message": "登录成功", "user": u})
				return
			}
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "用户名或密码错误"})
	})
	s.backend.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "退出成功"})
	})
	s.backend.HandleFunc("/api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "未登录"})
	})
}

func examQuestions() []model.Question {
	return []model.Question{
		{ID: 1, QuestionType: model.Single, QuestionText: "q1", OptionA: "a", OptionB: "b", CorrectAnswer: "A"},
		{ID: 2, QuestionType: model.Multiple, QuestionText: "q2", OptionA: "a", OptionB: "b", OptionC: "c", CorrectAnswer: "A,C"},
		{ID: 3, QuestionType: model.Judge, QuestionText: "q3", CorrectAnswer: model.JudgeFalse},
	}
}

func TestRouter_ExamFlow(t *testing.T) {
	s := newTestServer(t, "")
	s.withUsers(alice)
	s.backend.HandleFunc("/api/questions/random", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"questions": examQuestions(), "total": 3})
	})

	code, _ := s.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, code)

	code, env := s.do(http.MethodPost, "/api/exam/start", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "请先登录", env.Message)

	s.login(alice)

	code, env = s.do(http.MethodPost, "/api/exam/start", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	var view exam.View
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, exam.PhaseInProgress, view.Phase)
	assert.Equal(t, 1, view.Question.Number)
	assert.True(t, view.Question.Nav.PrevDisabled)

	steps := []struct {
		path string
		body any
	}{
		{path: "/api/exam/answers", body: map[string]any{"position": 0, "value": "A"}},
		{path: "/api/exam/advance", body: map[string]any{"delta": 1}},
		{path: "/api/exam/answers", body: map[string]any{"position": 1, "value": "C"}},
		{path: "/api/exam/answers", body: map[string]any{"position": 1, "value": "A"}},
		{path: "/api/exam/advance", body: map[string]any{"delta": 1}},
		{path: "/api/exam/answers", body: map[string]any{"position": 2, "value": model.JudgeTrue}},
	}
	for _, st := range steps {
		code, env = s.do(http.MethodPost, st.path, st.body)
		require.Equal(t, http.StatusOK, code, env.Message)
	}

	code, env = s.do(http.MethodGet, "/api/exam", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.True(t, view.Question.Nav.ShowSubmit)

	code, env = s.do(http.MethodPost, "/api/exam/advance", map[string]any{"delta": 2})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(http.MethodPost, "/api/exam/submit", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, exam.ErrNotConfirmed.Error(), env.Message)

	code, env = s.do(http.MethodPost, "/api/exam/submit?confirm=true", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.NotNil(t, view.Result)
	assert.Equal(t, "66.7", view.Result.ScoreText)
	assert.Equal(t, 2, view.Result.CorrectCount)

	code, _ = s.do(http.MethodPost, "/api/exam/answers", map[string]any{"position": 2, "value": model.JudgeFalse})
	assert.Equal(t, http.StatusConflict, code)

	code, env = s.do(http.MethodGet, "/api/exam/questions/1", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.True(t, view.Question.Nav.Hidden)

	code, _ = s.do(http.MethodGet, "/api/admin/overview", nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, exam.PhaseIdle, s.app.Exam.Snapshot().Phase)

	code, env = s.do(http.MethodGet, "/api/exam", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRouter_StartFailures(t *testing.T) {
	testCases := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode int
		wantMsg  string
	}{
		{
			name: "后端错误信息原样返回",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "题库为空"})
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "题库为空",
		},
		{
			name: "返回内容无法解析按网络错误处理",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("<html>"))
			},
			wantCode: http.StatusBadGateway,
			wantMsg:  "网络错误",
		},
		{
			name: "没有题目",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, map[string]any{"questions": []model.Question{}, "total": 0})
			},
			wantCode: http.StatusNotFound,
			wantMsg:  exam.ErrNoQuestions.Error(),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t, "")
			s.withUsers(alice)
			s.backend.HandleFunc("/api/questions/random", tc.handler)
			s.login(alice)

			code, env := s.do(http.MethodPost, "/api/exam/start", nil)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantMsg, env.Message)
			assert.Equal(t, exam.PhaseIdle, s.app.Exam.Snapshot().Phase)
		})
	}
}

func TestRouter_BackendSessionExpired(t *testing.T) {
	s := newTestServer(t, "")
	s.withUsers(alice)
	s.backend.HandleFunc("/api/exams", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "未登录"})
	})
	s.login(alice)

	code, env := s.do(http.MethodGet, "/api/history/exams", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "未登录", env.Message)

	_, ok := s.app.services.auth.CurrentUser()
	assert.False(t, ok)
	code, _ = s.do(http.MethodGet, "/api/exam", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRouter_Admin(t *testing.T) {
	s := newTestServer(t, "")
	s.withUsers(root)
	var cleared bool
	s.backend.HandleFunc("/api/admin/questions/clear", func(w http.ResponseWriter, r *http.Request) {
		cleared = true
		writeJSON(w, http.StatusOK, map[string]any{"message": "题库已清空", "deleted_count": 140})
	})
	s.backend.HandleFunc("/api/users/2", func(w http.ResponseWriter, r *http.Request) {
		t.Error("deleting the current user must not reach the backend")
	})
	s.login(root)

	code, env := s.do(http.MethodPost, "/api/admin/questions/clear", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, cleared)

	code, env = s.do(http.MethodPost, "/api/admin/questions/clear?confirm=true", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.True(t, cleared)
	assert.Equal(t, "题库已清空", env.Message)

	code, env = s.do(http.MethodDelete, "/api/admin/users/2?confirm=true", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "不能删除当前登录的用户", env.Message)

	code, _ = s.do(http.MethodDelete, "/api/admin/users/abc?confirm=true", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_StaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>index</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))
	s := newTestServer(t, dir)

	testCases := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{path: "/", wantCode: http.StatusOK, wantBody: "<html>index</html>"},
		{path: "/app.js", wantCode: http.StatusOK, wantBody: "console.log(1)"},
		{path: "/exam/review", wantCode: http.StatusOK, wantBody: "<html>index</html>"},
		{path: "/api/unknown", wantCode: http.StatusNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			s.app.Router.ServeHTTP(w, req)
			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, w.Body.String())
			}
		})
	}
}

func TestRouter_FailedLoginKeepsExam(t *testing.T) {
	s := newTestServer(t, "")
	s.withUsers(alice)
	s.backend.HandleFunc("/api/questions/random", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"questions": examQuestions(), "total": 3})
	})
	s.login(alice)

	code, env := s.do(http.MethodPost, "/api/exam/start", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	code, env = s.do(http.MethodPost, "/api/exam/answers", map[string]any{"position": 0, "value": "B"})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "mallory", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "用户名或密码错误", env.Message)

	code, env = s.do(http.MethodGet, "/api/exam", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	var view exam.View
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, exam.PhaseInProgress, view.Phase)
	require.NotNil(t, view.Question)
	assert.True(t, view.Question.Options[1].Selected)

	_, ok := s.app.services.auth.CurrentUser()
	assert.True(t, ok)
}
