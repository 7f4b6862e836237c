package exam

import (
	"exam_client/internal/model"

	"github.com/ecodeclub/ekit/slice"
)

const (
	InputRadio    = "radio"
	InputCheckbox = "checkbox"
)

// View 交给展示层的渲染指令，考试中带 Question，交卷后带 Result
type View struct {
	Phase    Phase         `json:"phase"`
	Question *QuestionView `json:"question,omitempty"`
	Result   *ResultView   `json:"result,omitempty"`
}

type QuestionView struct {
	Position   int                `json:"position"`
	Number     int                `json:"number"`
	Total      int                `json:"total"`
	QuestionID int64              `json:"question_id"`
	Type       model.QuestionType `json:"type"`
	TypeText   string             `json:"type_text"`
	Text       string             `json:"text"`
	InputKind  string             `json:"input_kind"`
	Options    []OptionView       `json:"options"`
	Nav        NavView            `json:"nav"`
}

type OptionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

type NavView struct {
	PrevDisabled bool `json:"prev_disabled"`
	ShowNext     bool `json:"show_next"`
	ShowSubmit   bool `json:"show_submit"`
	Hidden       bool `json:"hidden"`
}

type ResultView struct {
	Score        float64 `json:"score"`
	ScoreText    string  `json:"score_text"`
	CorrectCount int     `json:"correct_count"`
	Total        int     `json:"total_questions"`
	Percentage   string  `json:"percentage"`
	Nav          NavView `json:"nav"`
}

// Render 渲染当前状态：进行中渲染当前题，交卷后渲染成绩汇总
func Render(s State) (View, error) {
	switch s.Phase {
	case PhaseIdle:
		return View{Phase: PhaseIdle}, nil
	case PhaseCompleted:
		return View{Phase: PhaseCompleted, Result: renderResult(s.Result)}, nil
	}
	return RenderAt(s, s.Index)
}

// RenderAt 渲染指定位置的题目，不改变当前位置
func RenderAt(s State, position int) (View, error) {
	if s.Phase == PhaseIdle {
		return View{}, ErrNoActiveSession
	}
	if position < 0 || position >= len(s.Questions) {
		return View{}, ErrPositionOutOfRange
	}
	q := s.Questions[position]
	qv := RenderQuestion(q, s.Answers[q.ID])
	qv.Position = position
	qv.Number = position + 1
	qv.Total = len(s.Questions)
	qv.Nav = NavView{
		PrevDisabled: position == 0,
		ShowSubmit:   position == s.LastIndex(),
		ShowNext:     position != s.LastIndex(),
	}
	if s.Phase == PhaseCompleted {
		qv.Nav = NavView{PrevDisabled: true, Hidden: true}
	}
	return View{Phase: s.Phase, Question: &qv}, nil
}

// RenderQuestion 只依赖题目与已记录的作答，缺失的选项槽位直接跳过
func RenderQuestion(q model.Question, selected []string) QuestionView {
	qv := QuestionView{
		QuestionID: q.ID,
		Type:       q.QuestionType,
		TypeText:   q.QuestionType.Text(),
		Text:       q.QuestionText,
		InputKind:  InputRadio,
	}
	if q.QuestionType == model.Multiple {
		qv.InputKind = InputCheckbox
	}

	if q.QuestionType == model.Judge {
		qv.Options = slice.Map([]string{model.JudgeTrue, model.JudgeFalse}, func(_ int, v string) OptionView {
			return OptionView{Value: v, Label: v, Text: v, Selected: slice.Contains(selected, v)}
		})
		return qv
	}

	qv.Options = make([]OptionView, 0, len(model.OptionLabels))
	for _, label := range model.OptionLabels {
		text := q.Option(label)
		if text == "" {
			continue
		}
		qv.Options = append(qv.Options, OptionView{
			Value:    label,
			Label:    label + ". " + text,
			Text:     text,
			Selected: slice.Contains(selected, label),
		})
	}
	return qv
}

func renderResult(r *Result) *ResultView {
	if r == nil {
		return nil
	}
	pct := 0.0
	if r.Total > 0 {
		pct = float64(r.CorrectCount) / float64(r.Total) * 100
	}
	return &ResultView{
		Score:        r.Score,
		ScoreText:    FormatOneDecimal(r.Score),
		CorrectCount: r.CorrectCount,
		Total:        r.Total,
		Percentage:   FormatOneDecimal(pct) + "%",
		Nav:          NavView{PrevDisabled: true, Hidden: true},
	}
}
