package client

// 每个后端调用的操作名，用于日志、指标和链路，以及后端未给出错误信息时的默认提示
const (
	OpLogin           = "login"
	OpLogout          = "logout"
	OpRegister        = "register"
	OpProfile         = "profile"
	OpCurrentUser     = "current_user"
	OpUpdateUser      = "update_user"
	OpChangePassword  = "change_password"
	OpListUsers       = "list_users"
	OpCreateUser      = "create_user"
	OpDeleteUser      = "delete_user"
	OpResetPassword   = "reset_password"
	OpRandomQuestions = "random_questions"
	OpListQuestions   = "list_questions"
	OpAddQuestion     = "add_question"
	OpUpdateQuestion  = "update_question"
	OpDeleteQuestion  = "delete_question"
	OpClearQuestions  = "clear_questions"
	OpQuestionStats   = "question_stats"
	OpImportExcel     = "import_excel"
	OpListExams       = "list_exams"
	OpWrongQuestions  = "wrong_questions"
	OpMarkMastered    = "mark_mastered"
)

var defaultMessages = map[string]string{
	OpLogin:           "登录失败",
	OpLogout:          "退出登录失败",
	OpRegister:        "注册失败",
	OpProfile:         "未登录",
	OpCurrentUser:     "加载用户资料失败",
	OpUpdateUser:      "更新失败",
	OpChangePassword:  "密码修改失败",
	OpListUsers:       "加载用户列表失败",
	OpCreateUser:      "创建用户失败",
	OpDeleteUser:      "删除失败",
	OpResetPassword:   "密码重置失败",
	OpRandomQuestions: "开始考试失败",
	OpListQuestions:   "加载题目列表失败",
	OpAddQuestion:     "添加题目失败",
	OpUpdateQuestion:  "更新题目失败",
	OpDeleteQuestion:  "删除失败",
	OpClearQuestions:  "清空失败",
	OpQuestionStats:   "加载题库统计失败",
	OpImportExcel:     "导入失败",
	OpListExams:       "加载考试记录失败",
	OpWrongQuestions:  "加载错题本失败",
	OpMarkMastered:    "标记失败",
}

func defaultMessage(op string) string {
	if msg, ok := defaultMessages[op]; ok {
		return msg
	}
	return "请求失败"
}
