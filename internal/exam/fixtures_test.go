package exam

import "exam_client/internal/model"

func sampleQuestions() []model.Question {
	return []model.Question{
		{ID: 1, QuestionType: model.Single, QuestionText: "TCP 属于哪一层", OptionA: "应用层", OptionB: "传输层", OptionC: "网络层", CorrectAnswer: "B"},
		{ID: 2, QuestionType: model.Multiple, QuestionText: "以下哪些是 Go 关键字", OptionA: "go", OptionB: "defer", OptionC: "class", OptionD: "select", CorrectAnswer: "A,B,D"},
		{ID: 3, QuestionType: model.Judge, QuestionText: "HTTP 是无状态协议", CorrectAnswer: model.JudgeTrue},
	}
}

func mustSelect(s State, pos int, value string) State {
	next, err := Select(s, pos, value)
	if err != nil {
		panic(err)
	}
	return next
}
