package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hair-scanner-api/internal/domain"
	"hair-scanner-api/internal/feature/questionnaire"
)

type QuestionnaireRepo struct{ db *gorm.DB }

var _ domain.QuestionnaireRepository = (*QuestionnaireRepo)(nil)

func NewQuestionnaireRepo(db *gorm.DB) *QuestionnaireRepo { return &QuestionnaireRepo{db: db} }

func (r *QuestionnaireRepo) find(ctx context.Context, userID string) (*questionnaire.QuestionnaireModel, error) {
	var m questionnaire.QuestionnaireModel
	err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find questionnaire: %w", err)
	}
	return &m, nil
}

func (r *QuestionnaireRepo) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	m, err := r.find(ctx, userID)
	if err != nil || m == nil {
		return nil, err
	}
	return m.Profile(), nil
}

func (r *QuestionnaireRepo) Save(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, error) {
	m := questionnaire.QuestionnaireModel{UserID: userID}
	m.Apply(in)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Conflict("Profile already exists")
		}
		return nil, fmt.Errorf("save questionnaire: %w", err)
	}
	return m.Profile(), nil
}

func (r *QuestionnaireRepo) Update(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, error) {
	m, err := r.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("Profile not found")
	}
	m.Apply(in)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fmt.Errorf("update questionnaire: %w", err)
	}
	return m.Profile(), nil
}

func (r *QuestionnaireRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&questionnaire.QuestionnaireModel{}).Error; err != nil {
		return fmt.Errorf("delete questionnaire: %w", err)
	}
	return nil
}
