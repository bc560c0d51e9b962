package service

import (
	"context"
	"slices"

	"hair-scanner-api/internal/domain"
)

type ProfileCurator struct {
	repo domain.QuestionnaireRepository
}

func NewProfileCurator(repo domain.QuestionnaireRepository) *ProfileCurator {
	return &ProfileCurator{repo: repo}
}

func (p *ProfileCurator) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return p.repo.FindByUserID(ctx, userID)
}

// SaveProfile 已有则更新，否则新建；created 标识是否新建
func (p *ProfileCurator) SaveProfile(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, bool, error) {
	if err := validateProfile(in); err != nil {
		return nil, false, err
	}
	existing, err := p.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		prof, err := p.repo.Update(ctx, userID, in)
		return prof, false, err
	}
	prof, err := p.repo.Save(ctx, userID, in)
	if domain.KindOf(err) == domain.KindConflict {
		// 同一用户并发首次提交，退化为更新
		prof, err = p.repo.Update(ctx, userID, in)
		return prof, false, err
	}
	return prof, err == nil, err
}

func validateProfile(in domain.ProfileInput) error {
	if len(in.ActiveSymptoms) == 0 {
		return domain.InvalidInput("Please select at least one symptom")
	}
	checks := []struct {
		field, value string
		allowed      []string
	}{
		{"scalpCondition", in.ScalpCondition, domain.ScalpConditions},
		{"sebumLevel", in.SebumLevel, domain.SebumLevels},
		{"hairStrandCondition", in.HairStrandCondition, domain.HairStrandConditions},
		{"ingredientTolerance", in.IngredientTolerance, domain.IngredientTolerances},
	}
	for _, c := range checks {
		if !slices.Contains(c.allowed, c.value) {
			return domain.InvalidInput("Invalid " + c.field)
		}
	}
	for _, s := range in.ActiveSymptoms {
		if !slices.Contains(domain.ActiveSymptoms, s) {
			return domain.InvalidInput("Invalid activeSymptoms")
		}
	}
	return nil
}
