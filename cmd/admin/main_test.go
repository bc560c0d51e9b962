package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hair-scanner-api/internal/core/database"
	"hair-scanner-api/internal/domain"
	"hair-scanner-api/internal/repo"
)

func TestDeleteUser(t *testing.T) {
	db, err := database.NewGorm(database.Opts{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, repo.Migrate(db))

	ctx := context.Background()
	users := repo.NewUserRepo(db)
	profiles := repo.NewQuestionnaireRepo(db)

	v, err := users.Create(ctx, domain.NewUser{Email: "Gone@Example.com", PasswordHash: "x"})
	require.NoError(t, err)
	_, err = profiles.Save(ctx, v.ID, domain.ProfileInput{
		ScalpCondition:      "psoriasis",
		SebumLevel:          "dry",
		ActiveSymptoms:      []string{"redness"},
		HairStrandCondition: "natural",
		IngredientTolerance: "resilient",
	})
	require.NoError(t, err)

	id, err := deleteUser(ctx, db, "gone@example.com")
	require.NoError(t, err)
	assert.Equal(t, v.ID, id)

	rec, err := users.FindByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Nil(t, rec)
	p, err := profiles.FindByUserID(ctx, v.ID)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = deleteUser(ctx, db, "gone@example.com")
	assert.ErrorIs(t, err, errUserNotFound)
}
