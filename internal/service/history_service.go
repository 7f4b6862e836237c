package service

import (
	"context"

	"exam_client/internal/client"
	"exam_client/internal/model"

	"github.com/ecodeclub/ekit/slice"
)

type WrongQuestionView struct {
	model.WrongQuestion
	Question *QuestionView `json:"question,omitempty"`
}

// HistoryService 后端保存的考试记录与错题本
type HistoryService struct {
	Client *client.Client
}

func NewHistoryService(c *client.Client) *HistoryService {
	return &HistoryService{Client: c}
}

func (s *HistoryService) Exams(ctx context.Context, page, perPage int) (model.Page[model.ExamRecord], error) {
	return s.Client.ListExams(ctx, page, perPage)
}

func (s *HistoryService) WrongQuestions(ctx context.Context, page, perPage int, showMastered bool) (model.Page[WrongQuestionView], error) {
	res, err := s.Client.ListWrongQuestions(ctx, page, perPage, showMastered)
	if err != nil {
		return model.Page[WrongQuestionView]{}, err
	}
	items := slice.Map(res.Items, func(_ int, w model.WrongQuestion) WrongQuestionView {
		v := WrongQuestionView{WrongQuestion: w}
		if w.Question != nil {
			qv := NewQuestionView(*w.Question)
			v.Question = &qv
		}
		return v
	})
	return model.Page[WrongQuestionView]{
		Items:       items,
		Total:       res.Total,
		Pages:       res.Pages,
		CurrentPage: res.CurrentPage,
	}, nil
}

func (s *HistoryService) MarkMastered(ctx context.Context, id int64) error {
	return s.Client.MarkMastered(ctx, id)
}
