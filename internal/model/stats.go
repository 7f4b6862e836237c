package model

// QuestionStats 题库统计
type QuestionStats struct {
	Total    int `json:"total"`
	Single   int `json:"single"`
	Multiple int `json:"multiple"`
	Judge    int `json:"judge"`
}

// ImportResult 后端返回的 Excel 导入结果
type ImportResult struct {
	Message         string   `json:"message"`
	ImportedCount   int      `json:"imported_count"`
	ErrorCount      int      `json:"error_count"`
	SheetsProcessed []string `json:"sheets_processed"`
}
