package util

const (
	ContextUserKey = "user"
	TokenCookie    = "ui_token"
	TokenQuery     = "token"

	// BackendUnauthorizedKey 后端返回 401 时写入上下文，由会话中间件清理本地登录状态
	BackendUnauthorizedKey = "backend_unauthorized"
)

// MinPasswordLength 修改/重置密码的最短长度
const MinPasswordLength = 6

// 允许上传的题库文件
const (
	MimeZip         = "application/zip"
	MimeOctetStream = "application/octet-stream"
	MimeMSOffice    = "application/vnd.ms-excel"
)

var (
	AllowedExcelExtensions = []string{".xlsx", ".xls"}
	AllowedExcelMimeTypes  = []string{MimeZip, MimeOctetStream, MimeMSOffice}
)
