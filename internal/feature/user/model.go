package user

import (
	"time"

	"gorm.io/gorm"

	"hair-scanner-api/internal/domain"
	"hair-scanner-api/pkg/utils"
)

// EmailIndex lower(email) 唯一索引，由 repo.Migrate 创建
const EmailIndex = "idx_users_email_lower"

type UserModel struct {
	ID           string  `gorm:"primaryKey;size:36"`
	Email        string  `gorm:"size:255;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	DisplayName  *string `gorm:"size:255"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = utils.NewID()
	}
	return nil
}

func (m *UserModel) Record() *domain.UserRecord {
	return &domain.UserRecord{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		DisplayName:  m.DisplayName,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
