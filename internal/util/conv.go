package util

import (
	"strconv"
)

// ParseID 解析路径中的 id，非正整数时返回 ErrInvalidID
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// AtoiDefault 解析查询参数，为空或非法时返回默认值
func AtoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
