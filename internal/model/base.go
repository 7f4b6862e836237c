package model

// Page 后端分页结构，列表字段随接口不同而不同
type Page[T any] struct {
	Items       []T `json:"-"`
	Total       int `json:"total"`
	Pages       int `json:"pages"`
	CurrentPage int `json:"current_page"`
}

const (
	DefaultPage    = 1
	DefaultPerPage = 20
)
