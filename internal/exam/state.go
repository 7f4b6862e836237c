package exam

import (
	"exam_client/internal/model"

	"github.com/ecodeclub/ekit/slice"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseInProgress Phase = "in_progress"
	PhaseCompleted  Phase = "completed"
)

// Answers 题目 id 到当前作答的映射。单选/判断题只保存一个值，多选题按点击顺序保存
type Answers map[int64][]string

// State 一次考试的全部状态。所有转移函数都返回新值，不修改入参
type State struct {
	Phase     Phase
	Questions []model.Question
	Index     int
	Answers   Answers
	Result    *Result
}

// Begin 用新抽取的题目开始一场考试，之前的作答全部丢弃
func Begin(questions []model.Question) State {
	qs := make([]model.Question, len(questions))
	copy(qs, questions)
	return State{
		Phase:     PhaseInProgress,
		Questions: qs,
		Answers:   Answers{},
	}
}

func (s State) Current() (model.Question, bool) {
	if s.Phase == PhaseIdle || s.Index < 0 || s.Index >= len(s.Questions) {
		return model.Question{}, false
	}
	return s.Questions[s.Index], true
}

func (s State) LastIndex() int {
	return len(s.Questions) - 1
}

// Clone 深拷贝，保证调用方拿到的快照不会被后续事件修改
func (s State) Clone() State {
	c := s
	c.Questions = make([]model.Question, len(s.Questions))
	copy(c.Questions, s.Questions)
	c.Answers = make(Answers, len(s.Answers))
	for id, vals := range s.Answers {
		c.Answers[id] = append([]string(nil), vals...)
	}
	if s.Result != nil {
		r := *s.Result
		c.Result = &r
	}
	return c
}

// Select 记录一次选项点击：多选题切换该选项，单选/判断题覆盖原答案
func Select(s State, position int, value string) (State, error) {
	switch s.Phase {
	case PhaseIdle:
		return s, ErrNoActiveSession
	case PhaseCompleted:
		return s, ErrSessionCompleted
	}
	if position < 0 || position >= len(s.Questions) {
		return s, ErrPositionOutOfRange
	}
	q := s.Questions[position]
	if !slice.Contains(optionValues(q), value) {
		return s, ErrInvalidOption
	}

	next := s.Clone()
	if q.QuestionType != model.Multiple {
		next.Answers[q.ID] = []string{value}
		return next, nil
	}

	current := next.Answers[q.ID]
	if slice.Contains(current, value) {
		remaining := slice.FindAll(current, func(v string) bool {
			return v != value
		})
		if len(remaining) == 0 {
			delete(next.Answers, q.ID)
		} else {
			next.Answers[q.ID] = remaining
		}
	} else {
		next.Answers[q.ID] = append(current, value)
	}
	return next, nil
}

// Advance 前后移动一题，越界时保持不动
func Advance(s State, delta int) (State, error) {
	if delta != 1 && delta != -1 {
		return s, ErrInvalidDelta
	}
	switch s.Phase {
	case PhaseIdle:
		return s, ErrNoActiveSession
	case PhaseCompleted:
		return s, ErrSessionCompleted
	}
	target := s.Index + delta
	if target < 0 || target > s.LastIndex() {
		return s, nil
	}
	next := s.Clone()
	next.Index = target
	return next, nil
}

// Finish 计算得分并结束考试
func Finish(s State) (State, error) {
	switch s.Phase {
	case PhaseIdle:
		return s, ErrNoActiveSession
	case PhaseCompleted:
		return s, ErrSessionCompleted
	}
	next := s.Clone()
	res := Score(next.Questions, next.Answers)
	next.Result = &res
	next.Phase = PhaseCompleted
	return next, nil
}

// optionValues 题目实际渲染出来的选项值
func optionValues(q model.Question) []string {
	if q.QuestionType == model.Judge {
		return []string{model.JudgeTrue, model.JudgeFalse}
	}
	values := make([]string, 0, len(model.OptionLabels))
	for _, label := range model.OptionLabels {
		if q.Option(label) != "" {
			values = append(values, label)
		}
	}
	return values
}
