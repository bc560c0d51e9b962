package questionnaire

import (
	"time"

	"gorm.io/gorm"

	"hair-scanner-api/internal/domain"
	"hair-scanner-api/pkg/utils"
)

type QuestionnaireModel struct {
	ID                  string   `gorm:"primaryKey;size:36"`
	UserID              string   `gorm:"size:36;not null;uniqueIndex"`
	ScalpCondition      string   `gorm:"size:32;not null"`
	SebumLevel          string   `gorm:"size:16;not null"`
	ActiveSymptoms      []string `gorm:"serializer:json;type:text;not null"`
	HairStrandCondition string   `gorm:"size:16;not null"`
	IngredientTolerance string   `gorm:"size:16;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (QuestionnaireModel) TableName() string { return "questionnaires" }

func (m *QuestionnaireModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = utils.NewID()
	}
	return nil
}

func (m *QuestionnaireModel) Apply(in domain.ProfileInput) {
	m.ScalpCondition = in.ScalpCondition
	m.SebumLevel = in.SebumLevel
	m.ActiveSymptoms = append([]string(nil), in.ActiveSymptoms...)
	m.HairStrandCondition = in.HairStrandCondition
	m.IngredientTolerance = in.IngredientTolerance
}

func (m *QuestionnaireModel) Profile() *domain.Profile {
	return &domain.Profile{
		ID:                  m.ID,
		UserID:              m.UserID,
		ScalpCondition:      m.ScalpCondition,
		SebumLevel:          m.SebumLevel,
		ActiveSymptoms:      append([]string(nil), m.ActiveSymptoms...),
		HairStrandCondition: m.HairStrandCondition,
		IngredientTolerance: m.IngredientTolerance,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
