package domain

import (
	"context"
	"time"
)

// UserRecord 含密码哈希，只在 repo / service 之间流转
type UserRecord struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserView 对外投影，不含密码哈希
type UserView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *UserRecord) View() UserView {
	return UserView{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

type NewUser struct {
	Email        string
	PasswordHash string
	DisplayName  *string
}

type AuthResult struct {
	AccessToken string   `json:"accessToken"`
	User        UserView `json:"user"`
}

// UserRepository 查不到时返回 (nil, nil)；Create 遇到唯一冲突返回 Conflict
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*UserRecord, error)
	FindByEmail(ctx context.Context, email string) (*UserRecord, error)
	Create(ctx context.Context, in NewUser) (*UserView, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id string) error
}
