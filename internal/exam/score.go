package exam

import (
	"fmt"
	"sort"
	"strings"

	"exam_client/internal/model"
)

// Result 交卷后的成绩，只在本地计算，不上报后端
type Result struct {
	CorrectCount int     `json:"correct_count"`
	Total        int     `json:"total_questions"`
	Score        float64 `json:"score"`
}

// Score 逐题比较作答与标准答案，没有部分得分，未作答按错误计
func Score(questions []model.Question, answers Answers) Result {
	res := Result{Total: len(questions)}
	for _, q := range questions {
		if IsCorrect(q, answers[q.ID]) {
			res.CorrectCount++
		}
	}
	if res.Total > 0 {
		res.Score = float64(res.CorrectCount) / float64(res.Total) * 100
	}
	return res
}

// IsCorrect 判断单题是否答对
func IsCorrect(q model.Question, selected []string) bool {
	if len(selected) == 0 {
		return false
	}
	return Canonical(q, selected) == q.CorrectAnswer
}

// Canonical 把作答转成后端标准答案的格式：多选题排序后用逗号连接
func Canonical(q model.Question, selected []string) string {
	if q.QuestionType != model.Multiple {
		if len(selected) == 0 {
			return ""
		}
		return selected[0]
	}
	sorted := append([]string(nil), selected...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// FormatOneDecimal 保留一位小数的展示格式
func FormatOneDecimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
