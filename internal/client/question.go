package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"exam_client/internal/model"

	"github.com/pkg/errors"
)

type questionsPage struct {
	Questions   []model.Question `json:"questions"`
	Total       int              `json:"total"`
	Pages       int              `json:"pages"`
	CurrentPage int              `json:"current_page"`
}

type questionEnvelope struct {
	Message  string         `json:"message"`
	Question model.Question `json:"question"`
}

// ClearResult 清空题库的结果
type ClearResult struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}

// RandomQuestions 按题型随机抽取一套考试题，数量由后端决定
func (c *Client) RandomQuestions(ctx context.Context) ([]model.Question, error) {
	var resp questionsPage
	if err := c.call(ctx, OpRandomQuestions, http.MethodGet, "/api/questions/random", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

func (c *Client) ListQuestions(ctx context.Context, q model.QuestionQuery) (model.Page[model.Question], error) {
	query := pageQuery(q.Page, q.PerPage)
	if q.Type != "" {
		query.Set("type", string(q.Type))
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	var resp questionsPage
	err := c.call(ctx, OpListQuestions, http.MethodGet, "/api/questions", query, nil, &resp)
	return model.Page[model.Question]{
		Items:       resp.Questions,
		Total:       resp.Total,
		Pages:       resp.Pages,
		CurrentPage: resp.CurrentPage,
	}, err
}

func (c *Client) AddQuestion(ctx context.Context, in model.QuestionInput) (model.Question, error) {
	var resp questionEnvelope
	err := c.call(ctx, OpAddQuestion, http.MethodPost, "/api/questions", nil, in, &resp)
	return resp.Question, err
}

func (c *Client) UpdateQuestion(ctx context.Context, id int64, in model.QuestionInput) (model.Question, error) {
	var resp questionEnvelope
	err := c.call(ctx, OpUpdateQuestion, http.MethodPut, "/api/questions/"+strconv.FormatInt(id, 10), nil, in, &resp)
	return resp.Question, err
}

func (c *Client) DeleteQuestion(ctx context.Context, id int64) error {
	return c.call(ctx, OpDeleteQuestion, http.MethodDelete, "/api/questions/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) ClearQuestions(ctx context.Context) (ClearResult, error) {
	var resp ClearResult
	err := c.call(ctx, OpClearQuestions, http.MethodPost, "/api/admin/questions/clear", nil, nil, &resp)
	return resp, err
}

func (c *Client) QuestionStats(ctx context.Context) (model.QuestionStats, error) {
	var resp model.QuestionStats
	err := c.call(ctx, OpQuestionStats, http.MethodGet, "/api/admin/questions/stats", nil, nil, &resp)
	return resp, err
}

// ImportExcel 以 multipart 表单字段 file 上传题库文件
func (c *Client) ImportExcel(ctx context.Context, filename string, r io.Reader) (model.ImportResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return model.ImportResult{}, &TransportError{Op: OpImportExcel, Err: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return model.ImportResult{}, &TransportError{Op: OpImportExcel, Err: errors.Wrap(err, "read upload")}
	}
	if err := w.Close(); err != nil {
		return model.ImportResult{}, &TransportError{Op: OpImportExcel, Err: err}
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint("/api/admin/import-excel", nil), &buf)
	if err != nil {
		return model.ImportResult{}, &TransportError{Op: OpImportExcel, Err: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var resp model.ImportResult
	err = c.send(ctx, OpImportExcel, req, &resp)
	return resp, err
}
