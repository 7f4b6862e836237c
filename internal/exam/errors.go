package exam

import "errors"

var (
	ErrNotAuthenticated   = errors.New("请先登录")
	ErrNoActiveSession    = errors.New("没有进行中的考试")
	ErrSessionCompleted   = errors.New("考试已提交，答案不可修改")
	ErrPositionOutOfRange = errors.New("题号超出范围")
	ErrInvalidOption      = errors.New("无效的选项")
	ErrInvalidDelta       = errors.New("只能前进或后退一题")
	ErrNotConfirmed       = errors.New("提交考试需要确认")
	ErrNoQuestions        = errors.New("题库中没有可用的题目")
	ErrSessionReset       = errors.New("考试已被重置，请重新开始")
)
