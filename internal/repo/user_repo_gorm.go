package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hair-scanner-api/internal/domain"
	"hair-scanner-api/internal/feature/user"
)

type UserRepo struct{ db *gorm.DB }

var _ domain.UserRepository = (*UserRepo)(nil)

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.UserRecord, error) {
	if id == "" {
		return nil, nil
	}
	var m user.UserModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return m.Record(), nil
}

// FindByEmail 大小写不敏感，比较在 SQL 里做（命中 lower(email) 索引）
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	var m user.UserModel
	err := r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return m.Record(), nil
}

func (r *UserRepo) Create(ctx context.Context, in domain.NewUser) (*domain.UserView, error) {
	m := user.UserModel{
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		DisplayName:  in.DisplayName,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	v := m.Record().View()
	return &v, nil
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&user.UserModel{}).
		Where("lower(email) = lower(?)", email).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return len(ids) > 0, nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&user.UserModel{})
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("user not found")
	}
	return nil
}
