package service

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"exam_client/internal/client"
	"exam_client/internal/model"
	"exam_client/internal/util"
	"exam_client/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	// 只在前若干行里寻找题目起始行
	startRowScanLimit = 50
	// 第一列少于这个字数的行不当作题目
	minQuestionRunes = 10
	maxAnswerRunes   = 10
	previewSamples   = 5
	importLogLimit   = 50
)

var (
	startRowKeywords = []string{"题目", "试题", "第1题", "1.", "1、"}
	judgeKeywords    = []string{"判断", "对错", "正确", "错误", "是否", "√", "×", "true", "false", "（判断）", "(判断)"}
	multipleKeywords = []string{"多选", "选择", "（多选）", "(多选)", "以下哪些", "包括哪些"}
)

// PreviewRow 预览中识别出的一道候选题
type PreviewRow struct {
	Row           int                `json:"row"`
	QuestionText  string             `json:"question_text"`
	QuestionType  model.QuestionType `json:"question_type"`
	TypeText      string             `json:"type_text"`
	Options       []string           `json:"options"`
	CorrectAnswer string             `json:"correct_answer"`
}

type SheetPreview struct {
	Name       string              `json:"name"`
	StartRow   int                 `json:"start_row"`
	Candidates int                 `json:"candidates"`
	Types      model.QuestionStats `json:"types"`
	Samples    []PreviewRow        `json:"samples"`
}

// ImportPreview 上传前在本地解析 .xlsx 的结果，仅供确认，实际导入以后端为准
type ImportPreview struct {
	Filename string              `json:"filename"`
	Sheets   []SheetPreview      `json:"sheets"`
	Total    model.QuestionStats `json:"total"`
}

// ImportLogEntry 一次成功的导入
type ImportLogEntry struct {
	Time            time.Time `json:"time"`
	Filename        string    `json:"filename"`
	ImportedCount   int       `json:"imported_count"`
	ErrorCount      int       `json:"error_count"`
	SheetsProcessed []string  `json:"sheets_processed"`
}

type ImportService struct {
	Client *client.Client

	mu  sync.Mutex
	log []ImportLogEntry
}

func NewImportService(c *client.Client) *ImportService {
	return &ImportService{Client: c}
}

func validateUpload(filename string, data []byte) error {
	if filename == "" || len(data) == 0 {
		return util.ErrNoFile
	}
	if !util.IsExcelFilename(filename) {
		return util.ErrUnsupportedFile
	}
	if _, err := util.ValidateMimeType(bytes.NewReader(data), util.AllowedExcelMimeTypes); err != nil {
		return util.ErrUnsupportedFile
	}
	return nil
}

// Preview 只支持 .xlsx；.xls 直接交给后端解析
func (s *ImportService) Preview(filename string, data []byte) (ImportPreview, error) {
	if err := validateUpload(filename, data); err != nil {
		return ImportPreview{}, err
	}
	if !util.IsXLSX(filename) {
		return ImportPreview{}, util.Invalid("仅支持预览 .xlsx 文件")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return ImportPreview{}, util.Invalid("无法解析Excel文件")
	}
	defer f.Close()

	preview := ImportPreview{Filename: filename}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			logger.Log.Warn("skip unreadable sheet", zap.String("sheet", name), zap.Error(err))
			continue
		}
		sheet := previewSheet(name, rows)
		addStats(&preview.Total, sheet.Types)
		preview.Sheets = append(preview.Sheets, sheet)
	}
	return preview, nil
}

func previewSheet(name string, rows [][]string) SheetPreview {
	sheet := SheetPreview{Name: name, Samples: []PreviewRow{}}
	start := findStartRow(rows)
	sheet.StartRow = start + 1

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		text := cleanText(row[0])
		if utf8.RuneCountInString(text) < minQuestionRunes {
			continue
		}
		typ := DetectQuestionType(text)
		sheet.Candidates++
		countType(&sheet.Types, typ)
		if len(sheet.Samples) < previewSamples {
			sheet.Samples = append(sheet.Samples, PreviewRow{
				Row:           i + 1,
				QuestionText:  text,
				QuestionType:  typ,
				TypeText:      typ.Text(),
				Options:       parseOptions(row),
				CorrectAnswer: findAnswer(row),
			})
		}
	}
	return sheet
}

func findStartRow(rows [][]string) int {
	for i, row := range rows {
		if i > startRowScanLimit {
			break
		}
		line := strings.Join(row, " ")
		for _, kw := range startRowKeywords {
			if strings.Contains(line, kw) {
				return i
			}
		}
	}
	return 0
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func containsAny(s string, keywords []string) bool {
	return len(slice.FindAll(keywords, func(kw string) bool {
		return strings.Contains(s, kw)
	})) > 0
}

// DetectQuestionType 按关键词猜测题型，判断题优先，其余默认单选
func DetectQuestionType(text string) model.QuestionType {
	text = strings.ToLower(text)
	if containsAny(text, judgeKeywords) {
		return model.Judge
	}
	if containsAny(text, multipleKeywords) {
		return model.Multiple
	}
	return model.Single
}

// parseOptions 第 2 到第 5 列依次作为 A-D 选项
func parseOptions(row []string) []string {
	opts := make([]string, 0, len(model.OptionLabels))
	for i, label := range model.OptionLabels {
		col := i + 1
		if col >= len(row) {
			break
		}
		if text := cleanText(row[col]); text != "" {
			opts = append(opts, label+". "+text)
		}
	}
	return opts
}

// findAnswer 从最后一列往前找第一个足够短的单元格作为答案
func findAnswer(row []string) string {
	low := len(row) - 5
	if low < 4 {
		low = 4
	}
	for col := len(row) - 1; col > low; col-- {
		v := cleanText(row[col])
		if v != "" && utf8.RuneCountInString(v) <= maxAnswerRunes {
			return ParseCorrectAnswer(v)
		}
	}
	return "A"
}

// ParseCorrectAnswer 把表格中的各种答案写法归一成后端格式
func ParseCorrectAnswer(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch {
	case s == "":
		return "A"
	case strings.ContainsAny(s, ",，"):
		return strings.ReplaceAll(s, "，", ",")
	case len(s) == 1 && strings.Contains("ABCDEF", s):
		return s
	case containsAny(s, []string{"正确", "对", "√"}):
		return model.JudgeTrue
	case containsAny(s, []string{"错误", "错", "×"}):
		return model.JudgeFalse
	}
	return s
}

func countType(st *model.QuestionStats, t model.QuestionType) {
	st.Total++
	switch t {
	case model.Single:
		st.Single++
	case model.Multiple:
		st.Multiple++
	case model.Judge:
		st.Judge++
	}
}

func addStats(dst *model.QuestionStats, src model.QuestionStats) {
	dst.Total += src.Total
	dst.Single += src.Single
	dst.Multiple += src.Multiple
	dst.Judge += src.Judge
}

// Upload 把文件交给后端导入，成功后记入导入日志
func (s *ImportService) Upload(ctx context.Context, filename string, data []byte) (model.ImportResult, error) {
	if err := validateUpload(filename, data); err != nil {
		return model.ImportResult{}, err
	}
	res, err := s.Client.ImportExcel(ctx, filename, bytes.NewReader(data))
	if err != nil {
		return model.ImportResult{}, err
	}

	s.mu.Lock()
	entry := ImportLogEntry{
		Time:            time.Now(),
		Filename:        filename,
		ImportedCount:   res.ImportedCount,
		ErrorCount:      res.ErrorCount,
		SheetsProcessed: res.SheetsProcessed,
	}
	s.log = append([]ImportLogEntry{entry}, s.log...)
	if len(s.log) > importLogLimit {
		s.log = s.log[:importLogLimit]
	}
	s.mu.Unlock()

	logger.Log.Info("questions imported",
		zap.String("file", filename),
		zap.Int("imported", res.ImportedCount),
		zap.Int("errors", res.ErrorCount))
	return res, nil
}

// Log 导入日志，最新的在前
func (s *ImportService) Log() []ImportLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ImportLogEntry, len(s.log))
	copy(out, s.log)
	return out
}
