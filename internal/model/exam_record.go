package model

const (
	ExamInProgress = "in_progress"
	ExamCompleted  = "completed"
)

// ExamRecord 后端保存的考试记录
// swagger:model ExamRecord
type ExamRecord struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"user_id"`
	StartTime      string  `json:"start_time,omitempty"`
	EndTime        string  `json:"end_time,omitempty"`
	TotalQuestions int     `json:"total_questions"`
	CorrectCount   int     `json:"correct_count"`
	Score          float64 `json:"score"`
	Status         string  `json:"status"`
}

// WrongQuestion 错题本条目
// swagger:model WrongQuestion
type WrongQuestion struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	QuestionID    int64     `json:"question_id"`
	WrongCount    int       `json:"wrong_count"`
	LastWrongTime string    `json:"last_wrong_time,omitempty"`
	IsMastered    bool      `json:"is_mastered"`
	Question      *Question `json:"question,omitempty"`
}
