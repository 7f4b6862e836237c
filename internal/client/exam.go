package client

import (
	"context"
	"net/http"
	"strconv"

	"exam_client/internal/model"
)

type examsPage struct {
	Exams       []model.ExamRecord `json:"exams"`
	Total       int                `json:"total"`
	Pages       int                `json:"pages"`
	CurrentPage int                `json:"current_page"`
}

type wrongQuestionsPage struct {
	WrongQuestions []model.WrongQuestion `json:"wrong_questions"`
	Total          int                   `json:"total"`
	Pages          int                   `json:"pages"`
	CurrentPage    int                   `json:"current_page"`
}

// ListExams 当前用户的考试记录，按开始时间倒序
func (c *Client) ListExams(ctx context.Context, page, perPage int) (model.Page[model.ExamRecord], error) {
	var resp examsPage
	err := c.call(ctx, OpListExams, http.MethodGet, "/api/exams", pageQuery(page, perPage), nil, &resp)
	return model.Page[model.ExamRecord]{
		Items:       resp.Exams,
		Total:       resp.Total,
		Pages:       resp.Pages,
		CurrentPage: resp.CurrentPage,
	}, err
}

func (c *Client) ListWrongQuestions(ctx context.Context, page, perPage int, showMastered bool) (model.Page[model.WrongQuestion], error) {
	query := pageQuery(page, perPage)
	query.Set("show_mastered", strconv.FormatBool(showMastered))
	var resp wrongQuestionsPage
	err := c.call(ctx, OpWrongQuestions, http.MethodGet, "/api/wrong-questions", query, nil, &resp)
	return model.Page[model.WrongQuestion]{
		Items:       resp.WrongQuestions,
		Total:       resp.Total,
		Pages:       resp.Pages,
		CurrentPage: resp.CurrentPage,
	}, err
}

func (c *Client) MarkMastered(ctx context.Context, id int64) error {
	return c.call(ctx, OpMarkMastered, http.MethodPost,
		"/api/wrong-questions/"+strconv.FormatInt(id, 10)+"/master", nil, nil, nil)
}
