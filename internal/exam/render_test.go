package exam

import (
	"testing"

	"exam_client/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Idle(t *testing.T) {
	v, err := Render(State{Phase: PhaseIdle})
	require.NoError(t, err)
	assert.Equal(t, View{Phase: PhaseIdle}, v)

	_, err = RenderAt(State{Phase: PhaseIdle}, 0)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestRenderAt_Nav(t *testing.T) {
	s := Begin(sampleQuestions())
	testCases := []struct {
		name string
		pos  int
		want NavView
	}{
		{name: "第一题", pos: 0, want: NavView{PrevDisabled: true, ShowNext: true}},
		{name: "中间题", pos: 1, want: NavView{ShowNext: true}},
		{name: "最后一题", pos: 2, want: NavView{ShowSubmit: true}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := RenderAt(s, tc.pos)
			require.NoError(t, err)
			require.NotNil(t, v.Question)
			assert.Equal(t, tc.want, v.Question.Nav)
			assert.Equal(t, tc.pos+1, v.Question.Number)
			assert.Equal(t, 3, v.Question.Total)
		})
	}

	_, err := RenderAt(s, 3)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
}

func TestRenderAt_SingleQuestionShowsSubmit(t *testing.T) {
	s := Begin(sampleQuestions()[:1])
	v, err := RenderAt(s, 0)
	require.NoError(t, err)
	assert.Equal(t, NavView{PrevDisabled: true, ShowSubmit: true}, v.Question.Nav)
}

func TestRenderQuestion(t *testing.T) {
	qs := sampleQuestions()

	single := RenderQuestion(qs[0], []string{"B"})
	assert.Equal(t, InputRadio, single.InputKind)
	assert.Equal(t, "单选题", single.TypeText)
	assert.Equal(t, []OptionView{
		{Value: "A", Label: "A. 应用层", Text: "应用层"},
		{Value: "B", Label: "B. 传输层", Text: "传输层", Selected: true},
		{Value: "C", Label: "C. 网络层", Text: "网络层"},
	}, single.Options)

	multi := RenderQuestion(qs[1], []string{"D", "A"})
	assert.Equal(t, InputCheckbox, multi.InputKind)
	require.Len(t, multi.Options, 4)
	assert.True(t, multi.Options[0].Selected)
	assert.False(t, multi.Options[1].Selected)
	assert.True(t, multi.Options[3].Selected)

	judge := RenderQuestion(qs[2], nil)
	assert.Equal(t, InputRadio, judge.InputKind)
	assert.Equal(t, []OptionView{
		{Value: model.JudgeTrue, Label: model.JudgeTrue, Text: model.JudgeTrue},
		{Value: model.JudgeFalse, Label: model.JudgeFalse, Text: model.JudgeFalse},
	}, judge.Options)
}

func TestRender_Idempotent(t *testing.T) {
	s := Begin(sampleQuestions())
	s = mustSelect(s, 1, "B")
	s, _ = Advance(s, 1)

	first, err := Render(s)
	require.NoError(t, err)
	second, err := Render(s)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, first.Question.Options[1].Selected)
}

func TestRender_Completed(t *testing.T) {
	s := Begin(sampleQuestions())
	s = mustSelect(s, 0, "B")
	s = mustSelect(s, 2, model.JudgeTrue)
	s, err := Finish(s)
	require.NoError(t, err)

	v, err := Render(s)
	require.NoError(t, err)
	assert.Nil(t, v.Question)
	require.NotNil(t, v.Result)
	assert.Equal(t, "66.7", v.Result.ScoreText)
	assert.Equal(t, "66.7%", v.Result.Percentage)
	assert.Equal(t, 2, v.Result.CorrectCount)
	assert.True(t, v.Result.Nav.Hidden)

	review, err := RenderAt(s, 0)
	require.NoError(t, err)
	assert.True(t, review.Question.Nav.Hidden)
	assert.True(t, review.Question.Options[1].Selected)
}
