package model

// QuestionType 题型
type QuestionType string

const (
	Single   QuestionType = "single"
	Multiple QuestionType = "multiple"
	Judge    QuestionType = "judge"
)

// 判断题的两个固定选项，同时也是判断题标准答案的取值
const (
	JudgeTrue  = "正确"
	JudgeFalse = "错误"
)

// OptionLabels 单选/多选题的选项槽位
var OptionLabels = []string{"A", "B", "C", "D"}

// swagger:model Question
type Question struct {
	ID            int64        `json:"id"`
	QuestionText  string       `json:"question_text"`
	QuestionType  QuestionType `json:"question_type"`
	OptionA       string       `json:"option_a,omitempty"`
	OptionB       string       `json:"option_b,omitempty"`
	OptionC       string       `json:"option_c,omitempty"`
	OptionD       string       `json:"option_d,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation,omitempty"`
	Difficulty    int          `json:"difficulty,omitempty"`
	CreatedAt     string       `json:"created_at,omitempty"`
}

// Option 返回槽位 A-D 的选项文本，槽位不存在时返回空串
func (q Question) Option(label string) string {
	switch label {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

func (t QuestionType) Valid() bool {
	return t == Single || t == Multiple || t == Judge
}

// Text 题型的中文名称
func (t QuestionType) Text() string {
	switch t {
	case Single:
		return "单选题"
	case Multiple:
		return "多选题"
	case Judge:
		return "判断题"
	}
	return "未知"
}

// QuestionInput 新增/编辑题目的请求体，字段为 nil 表示不修改
type QuestionInput struct {
	QuestionText  *string       `json:"question_text,omitempty"`
	QuestionType  *QuestionType `json:"question_type,omitempty"`
	OptionA       *string       `json:"option_a,omitempty"`
	OptionB       *string       `json:"option_b,omitempty"`
	OptionC       *string       `json:"option_c,omitempty"`
	OptionD       *string       `json:"option_d,omitempty"`
	CorrectAnswer *string       `json:"correct_answer,omitempty"`
	Explanation   *string       `json:"explanation,omitempty"`
	Difficulty    *int          `json:"difficulty,omitempty"`
}

// QuestionQuery 题目列表查询条件
type QuestionQuery struct {
	Page    int
	PerPage int
	Type    QuestionType
	Search  string
}
