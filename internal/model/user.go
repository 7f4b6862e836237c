package model

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// swagger:model User
type User struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email,omitempty"`
	Role      UserRole `json:"role"`
	CreatedAt string   `json:"created_at,omitempty"`
	LastLogin string   `json:"last_login,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RoleText 角色展示名
func (r UserRole) Text() string {
	if r == RoleAdmin {
		return "管理员"
	}
	return "普通用户"
}

type UserCreate struct {
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Password string   `json:"password"`
	Role     UserRole `json:"role,omitempty"`
}

type UserUpdate struct {
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email,omitempty"`
	Role     UserRole `json:"role,omitempty"`
}
