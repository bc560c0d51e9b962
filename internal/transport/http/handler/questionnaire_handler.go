package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hair-scanner-api/internal/domain"
	"hair-scanner-api/internal/transport/http/ez"
	mdw "hair-scanner-api/internal/transport/http/middleware"
)

type ProfileCurator interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, bool, error)
}

type QuestionnaireHandler struct {
	curator ProfileCurator
	log     *zap.Logger
}

func NewQuestionnaireHandler(curator ProfileCurator, l *zap.Logger) *QuestionnaireHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &QuestionnaireHandler{curator: curator, log: l}
}

func (h *QuestionnaireHandler) Priority() int { return 20 }

type profileReq struct {
	ScalpCondition      string   `json:"scalpCondition"      binding:"required,oneof=seborrheic_dermatitis psoriasis atopic_dermatitis severe_dandruff sensitive_itchy"`
	SebumLevel          string   `json:"sebumLevel"          binding:"required,oneof=excessive moderate dry"`
	ActiveSymptoms      []string `json:"activeSymptoms"      binding:"required,min=1,dive,oneof=itching redness yellow_scales white_flakes pain_burning"`
	HairStrandCondition string   `json:"hairStrandCondition" binding:"required,oneof=natural dyed bleached"`
	IngredientTolerance string   `json:"ingredientTolerance" binding:"required,oneof=resilient moderate hypoallergenic"`
}

type profileOut struct {
	Profile *domain.Profile `json:"profile"`
	created bool
}

func (o profileOut) HTTPStatus() int {
	if o.created {
		return http.StatusCreated
	}
	return http.StatusOK
}

func (h *QuestionnaireHandler) Mount(_, protected *gin.RouterGroup) {
	priv := ez.New(protected, h.log)
	ez.Register(priv, ez.Action[struct{}, profileOut]{
		Method:  http.MethodGet,
		Path:    "/questionnaires/me",
		Binder:  ez.BindNone,
		Handler: h.getMine,
	})
	ez.Register(priv, ez.Action[profileReq, profileOut]{
		Method:  http.MethodPost,
		Path:    "/questionnaires",
		Binder:  ez.BindJSON,
		Handler: h.save,
	})
}

func (h *QuestionnaireHandler) getMine(c *gin.Context, _ *struct{}) (profileOut, error) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		return profileOut{}, domain.Unauthorized("Unauthorized")
	}
	p, err := h.curator.GetProfile(c.Request.Context(), u.ID)
	if err != nil {
		return profileOut{}, err
	}
	if p == nil {
		return profileOut{}, domain.NotFound("Profile not found")
	}
	return profileOut{Profile: p}, nil
}

func (h *QuestionnaireHandler) save(c *gin.Context, in *profileReq) (profileOut, error) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		return profileOut{}, domain.Unauthorized("Unauthorized")
	}
	p, created, err := h.curator.SaveProfile(c.Request.Context(), u.ID, domain.ProfileInput{
		ScalpCondition:      in.ScalpCondition,
		SebumLevel:          in.SebumLevel,
		ActiveSymptoms:      in.ActiveSymptoms,
		HairStrandCondition: in.HairStrandCondition,
		IngredientTolerance: in.IngredientTolerance,
	})
	if err != nil {
		return profileOut{}, err
	}
	return profileOut{Profile: p, created: created}, nil
}
