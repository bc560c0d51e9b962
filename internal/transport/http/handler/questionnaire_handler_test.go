package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hair-scanner-api/internal/domain"
)

const validProfile = `{
	"scalpCondition": "severe_dandruff",
	"sebumLevel": "excessive",
	"activeSymptoms": ["itching", "white_flakes"],
	"hairStrandCondition": "dyed",
	"ingredientTolerance": "moderate"
}`

func TestQuestionnaireHandler_GetMine(t *testing.T) {
	var stored *domain.Profile
	c := &mockCurator{GetProfileFunc: func(_ context.Context, userID string) (*domain.Profile, error) {
		assert.Equal(t, testUser.ID, userID)
		return stored, nil
	}}
	r := setupRouter(NewQuestionnaireHandler(c, nil).Mount, true)

	w, body := doJSON(t, r, http.MethodGet, "/api/questionnaires/me", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Profile not found", body["message"])

	stored = &domain.Profile{ID: "p-1", UserID: testUser.ID, SebumLevel: "dry"}
	w, body = doJSON(t, r, http.MethodGet, "/api/questionnaires/me", "")
	require.Equal(t, http.StatusOK, w.Code)
	profile := body["profile"].(map[string]any)
	assert.Equal(t, "dry", profile["sebumLevel"])
}

func TestQuestionnaireHandler_Save(t *testing.T) {
	created := true
	var got domain.ProfileInput
	c := &mockCurator{SaveProfileFunc: func(_ context.Context, userID string, in domain.ProfileInput) (*domain.Profile, bool, error) {
		got = in
		return &domain.Profile{ID: "p-1", UserID: userID, ScalpCondition: in.ScalpCondition}, created, nil
	}}
	r := setupRouter(NewQuestionnaireHandler(c, nil).Mount, true)

	w, _ := doJSON(t, r, http.MethodPost, "/api/questionnaires", validProfile)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"itching", "white_flakes"}, got.ActiveSymptoms)

	created = false
	w, _ = doJSON(t, r, http.MethodPost, "/api/questionnaires", validProfile)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQuestionnaireHandler_Save_Validation(t *testing.T) {
	c := &mockCurator{SaveProfileFunc: func(context.Context, string, domain.ProfileInput) (*domain.Profile, bool, error) {
		t.Fatal("curator must not run on invalid input")
		return nil, false, nil
	}}
	r := setupRouter(NewQuestionnaireHandler(c, nil).Mount, true)

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"empty symptoms", `{"scalpCondition":"psoriasis","sebumLevel":"dry","activeSymptoms":[],"hairStrandCondition":"natural","ingredientTolerance":"resilient"}`, "Please select at least one symptom"},
		{"unknown symptom", `{"scalpCondition":"psoriasis","sebumLevel":"dry","activeSymptoms":["hair_loss"],"hairStrandCondition":"natural","ingredientTolerance":"resilient"}`, "Invalid activeSymptoms"},
		{"unknown sebum", `{"scalpCondition":"psoriasis","sebumLevel":"oily","activeSymptoms":["redness"],"hairStrandCondition":"natural","ingredientTolerance":"resilient"}`, "Invalid sebumLevel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doJSON(t, r, http.MethodPost, "/api/questionnaires", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.msg, body["message"])
		})
	}
}
