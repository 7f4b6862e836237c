package util

import "errors"

// InvalidInput 参数校验失败，控制器统一返回 400
type InvalidInput struct {
	Msg string
}

func (e *InvalidInput) Error() string {
	return e.Msg
}

func Invalid(msg string) error {
	return &InvalidInput{Msg: msg}
}

func IsInvalidInput(err error) bool {
	var ie *InvalidInput
	return errors.As(err, &ie)
}

var (
	ErrMissingCredentials = Invalid("请输入用户名和密码")
	ErrMissingFields      = Invalid("请填写所有字段")
	ErrPasswordMismatch   = Invalid("两次输入的新密码不一致")
	ErrNewPasswordShort   = Invalid("新密码长度至少6位")
	ErrPasswordShort      = Invalid("密码长度至少6位")
	ErrUserFieldsRequired = Invalid("用户名和密码不能为空")
	ErrDeleteSelf         = Invalid("不能删除当前登录的用户")
	ErrNoFile             = Invalid("请选择Excel文件")
	ErrUnsupportedFile    = Invalid("只支持Excel文件(.xlsx, .xls)")
	ErrConfirmRequired    = Invalid("该操作需要确认")
	ErrInvalidID          = Invalid("无效的ID")

	ErrNotLoggedIn      = errors.New("请先登录")
	ErrPermissionDenied = errors.New("需要管理员权限")
	ErrSessionMismatch  = errors.New("登录状态已失效，请重新登录")
)
