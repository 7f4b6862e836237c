package service

import (
	"context"
	"net/http"
	"testing"

	"exam_client/internal/client"
	"exam_client/internal/model"
	"exam_client/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestQuestionService_Add(t *testing.T) {
	fb := newFakeBackend()
	fb.handle("/api/questions", http.StatusCreated, map[string]any{
		"message":  "题目添加成功",
		"question": model.Question{ID: 11, QuestionType: model.Judge, QuestionText: "q", CorrectAnswer: model.JudgeTrue},
	})
	svc := NewQuestionService(fb.client(t))
	judge := model.Judge
	bad := model.QuestionType("essay")

	testCases := []struct {
		name    string
		in      model.QuestionInput
		wantErr bool
	}{
		{name: "缺少题干", in: model.QuestionInput{QuestionType: &judge, CorrectAnswer: strPtr("正确")}, wantErr: true},
		{name: "题型无效", in: model.QuestionInput{QuestionText: strPtr("q"), QuestionType: &bad, CorrectAnswer: strPtr("A")}, wantErr: true},
		{name: "缺少答案", in: model.QuestionInput{QuestionText: strPtr("q"), QuestionType: &judge}, wantErr: true},
		{name: "成功", in: model.QuestionInput{QuestionText: strPtr("q"), QuestionType: &judge, CorrectAnswer: strPtr("正确")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := svc.Add(context.Background(), tc.in)
			if tc.wantErr {
				assert.True(t, util.IsInvalidInput(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), q.ID)
			assert.Equal(t, "判断题", q.TypeText)
		})
	}
}

func TestQuestionService_Overview(t *testing.T) {
	fb := newFakeBackend()
	fb.handle("/api/admin/questions/stats", http.StatusOK, model.QuestionStats{Total: 3, Single: 1, Multiple: 1, Judge: 1})
	fb.handle("/api/users", http.StatusOK, map[string]any{
		"users": []model.User{{ID: 1, Role: model.RoleAdmin}}, "total": 1, "pages": 1, "current_page": 1,
	})
	fb.handle("/api/questions", http.StatusOK, map[string]any{
		"questions": []model.Question{{ID: 1, QuestionType: model.Multiple}}, "total": 1, "pages": 1, "current_page": 1,
	})
	c := fb.client(t)
	svc := NewQuestionService(c)
	users := NewUserService(c, NewAuthService(c, testConfig()))

	ov, err := svc.Overview(context.Background(), users)
	require.NoError(t, err)
	assert.Equal(t, 3, ov.Stats.Total)
	assert.Equal(t, 1, ov.Users.Total)
	qs, ok := ov.Questions.List.([]QuestionView)
	require.True(t, ok)
	assert.Equal(t, "多选题", qs[0].TypeText)
}

func TestQuestionService_OverviewFailsFast(t *testing.T) {
	fb := newFakeBackend()
	fb.handle("/api/admin/questions/stats", http.StatusForbidden, map[string]string{"error": "需要管理员权限"})
	fb.handle("/api/users", http.StatusOK, map[string]any{"users": []model.User{}})
	fb.handle("/api/questions", http.StatusOK, map[string]any{"questions": []model.Question{}})
	c := fb.client(t)
	svc := NewQuestionService(c)
	users := NewUserService(c, NewAuthService(c, testConfig()))

	_, err := svc.Overview(context.Background(), users)
	var se *client.ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusForbidden, se.Status)
}

func TestToPageResponse_EmptyList(t *testing.T) {
	resp := ToPageResponse(model.Page[QuestionView]{})
	assert.Equal(t, []QuestionView{}, resp.List)
}
