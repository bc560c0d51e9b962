package domain

import (
	"context"
	"time"
)

var (
	ScalpConditions = []string{
		"seborrheic_dermatitis",
		"psoriasis",
		"atopic_dermatitis",
		"severe_dandruff",
		"sensitive_itchy",
	}
	SebumLevels          = []string{"excessive", "moderate", "dry"}
	ActiveSymptoms       = []string{"itching", "redness", "yellow_scales", "white_flakes", "pain_burning"}
	HairStrandConditions = []string{"natural", "dyed", "bleached"}
	IngredientTolerances = []string{"resilient", "moderate", "hypoallergenic"}
)

type ProfileInput struct {
	ScalpCondition      string   `json:"scalpCondition"`
	SebumLevel          string   `json:"sebumLevel"`
	ActiveSymptoms      []string `json:"activeSymptoms"`
	HairStrandCondition string   `json:"hairStrandCondition"`
	IngredientTolerance string   `json:"ingredientTolerance"`
}

type Profile struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	ScalpCondition      string    `json:"scalpCondition"`
	SebumLevel          string    `json:"sebumLevel"`
	ActiveSymptoms      []string  `json:"activeSymptoms"`
	HairStrandCondition string    `json:"hairStrandCondition"`
	IngredientTolerance string    `json:"ingredientTolerance"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type QuestionnaireRepository interface {
	FindByUserID(ctx context.Context, userID string) (*Profile, error)
	Save(ctx context.Context, userID string, in ProfileInput) (*Profile, error)
	Update(ctx context.Context, userID string, in ProfileInput) (*Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
