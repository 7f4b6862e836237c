package service

import (
	"context"
	"strings"

	"exam_client/internal/client"
	"exam_client/internal/model"
	"exam_client/internal/util"
	"exam_client/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionView 带题型展示名的题目
type QuestionView struct {
	model.Question
	TypeText string `json:"type_text"`
}

func NewQuestionView(q model.Question) QuestionView {
	return QuestionView{Question: q, TypeText: q.QuestionType.Text()}
}

// Overview 管理后台首页需要的数据
type Overview struct {
	Stats     model.QuestionStats `json:"stats"`
	Users     util.PageResponse   `json:"users"`
	Questions util.PageResponse   `json:"questions"`
}

type QuestionService struct {
	Client *client.Client
}

func NewQuestionService(c *client.Client) *QuestionService {
	return &QuestionService{Client: c}
}

func (s *QuestionService) List(ctx context.Context, q model.QuestionQuery) (model.Page[QuestionView], error) {
	q.Search = strings.TrimSpace(q.Search)
	res, err := s.Client.ListQuestions(ctx, q)
	if err != nil {
		return model.Page[QuestionView]{}, err
	}
	return model.Page[QuestionView]{
		Items:       slice.Map(res.Items, func(_ int, q model.Question) QuestionView { return NewQuestionView(q) }),
		Total:       res.Total,
		Pages:       res.Pages,
		CurrentPage: res.CurrentPage,
	}, nil
}

func (s *QuestionService) Add(ctx context.Context, in model.QuestionInput) (QuestionView, error) {
	if in.QuestionText == nil || strings.TrimSpace(*in.QuestionText) == "" {
		return QuestionView{}, util.Invalid("题目内容不能为空")
	}
	if in.QuestionType == nil || !in.QuestionType.Valid() {
		return QuestionView{}, util.Invalid("题型无效")
	}
	if in.CorrectAnswer == nil || strings.TrimSpace(*in.CorrectAnswer) == "" {
		return QuestionView{}, util.Invalid("正确答案不能为空")
	}
	q, err := s.Client.AddQuestion(ctx, in)
	if err != nil {
		return QuestionView{}, err
	}
	return NewQuestionView(q), nil
}

func (s *QuestionService) Update(ctx context.Context, id int64, in model.QuestionInput) (QuestionView, error) {
	if in.QuestionType != nil && !in.QuestionType.Valid() {
		return QuestionView{}, util.Invalid("题型无效")
	}
	q, err := s.Client.UpdateQuestion(ctx, id, in)
	if err != nil {
		return QuestionView{}, err
	}
	return NewQuestionView(q), nil
}

func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	return s.Client.DeleteQuestion(ctx, id)
}

// Clear 清空整个题库，已有考试记录中的题目会一并失效
func (s *QuestionService) Clear(ctx context.Context) (client.ClearResult, error) {
	res, err := s.Client.ClearQuestions(ctx)
	if err != nil {
		return client.ClearResult{}, err
	}
	logger.Log.Warn("question bank cleared", zap.Int("deleted", res.DeletedCount))
	return res, nil
}

func (s *QuestionService) Stats(ctx context.Context) (model.QuestionStats, error) {
	return s.Client.QuestionStats(ctx)
}

// Overview 并发拉取统计、第一页用户和第一页题目，任一失败即返回
func (s *QuestionService) Overview(ctx context.Context, users *UserService) (Overview, error) {
	var (
		ov        Overview
		userPage  model.Page[UserView]
		questPage model.Page[QuestionView]
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		ov.Stats, err = s.Stats(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		userPage, err = users.ListUsers(ctx, model.DefaultPage, model.DefaultPerPage)
		return err
	})
	eg.Go(func() error {
		var err error
		questPage, err = s.List(ctx, model.QuestionQuery{})
		return err
	})
	if err := eg.Wait(); err != nil {
		return Overview{}, err
	}
	ov.Users = ToPageResponse(userPage)
	ov.Questions = ToPageResponse(questPage)
	return ov, nil
}

// ToPageResponse 把后端分页转换成统一的分页响应
func ToPageResponse[T any](p model.Page[T]) util.PageResponse {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return util.PageResponse{
		List:  items,
		Total: p.Total,
		Pages: p.Pages,
		Page:  p.CurrentPage,
	}
}
