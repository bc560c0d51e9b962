package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hair-scanner-api/internal/domain"
)

func sampleProfile() domain.ProfileInput {
	return domain.ProfileInput{
		ScalpCondition:      "severe_dandruff",
		SebumLevel:          "excessive",
		ActiveSymptoms:      []string{"itching", "white_flakes"},
		HairStrandCondition: "dyed",
		IngredientTolerance: "moderate",
	}
}

func TestQuestionnaireRepo_SaveFindUpdate(t *testing.T) {
	r := NewQuestionnaireRepo(setupTestDB(t))
	ctx := context.Background()

	p, err := r.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, p)

	saved, err := r.Save(ctx, "user-1", sampleProfile())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "user-1", saved.UserID)

	got, err := r.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"itching", "white_flakes"}, got.ActiveSymptoms)
	assert.Equal(t, "severe_dandruff", got.ScalpCondition)

	in := sampleProfile()
	in.SebumLevel = "dry"
	in.ActiveSymptoms = []string{"redness"}
	upd, err := r.Update(ctx, "user-1", in)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, upd.ID)
	assert.Equal(t, "dry", upd.SebumLevel)
	assert.Equal(t, []string{"redness"}, upd.ActiveSymptoms)
}

func TestQuestionnaireRepo_SaveTwiceConflicts(t *testing.T) {
	r := NewQuestionnaireRepo(setupTestDB(t))
	ctx := context.Background()

	_, err := r.Save(ctx, "user-1", sampleProfile())
	require.NoError(t, err)

	_, err = r.Save(ctx, "user-1", sampleProfile())
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestQuestionnaireRepo_UpdateMissing(t *testing.T) {
	r := NewQuestionnaireRepo(setupTestDB(t))

	_, err := r.Update(context.Background(), "nobody", sampleProfile())
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestQuestionnaireRepo_DeleteByUserID(t *testing.T) {
	r := NewQuestionnaireRepo(setupTestDB(t))
	ctx := context.Background()

	_, err := r.Save(ctx, "user-1", sampleProfile())
	require.NoError(t, err)
	require.NoError(t, r.DeleteByUserID(ctx, "user-1"))
	require.NoError(t, r.DeleteByUserID(ctx, "user-1"), "deleting nothing is fine")

	p, err := r.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, p)
}
