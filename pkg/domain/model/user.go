package model

import "time"

// User 是用户的领域模型。ID 为对外公开的短 ID。
type User struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`

	// PasswordHash 仅在认证流程内部使用，不对外输出
	PasswordHash string `json:"-"`
}

// CreateUserParams 是创建用户时仓库层需要的参数。
type CreateUserParams struct {
	Username     string
	Nickname     string
	Email        string
	PasswordHash string
}

// RegisterRequest 是注册接口的请求体。
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}

// LoginRequest 是登录接口的请求体。
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 返回访问令牌与用户信息。
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user"`
}
