package repo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hair-scanner-api/internal/core/cache"
	"hair-scanner-api/internal/domain"
)

// CachedQuestionnaires 读走 redis（singleflight 回源），写后删 key
type CachedQuestionnaires struct {
	inner domain.QuestionnaireRepository
	cache *cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

var _ domain.QuestionnaireRepository = (*CachedQuestionnaires)(nil)

func NewCachedQuestionnaires(inner domain.QuestionnaireRepository, c *cache.Cache, ttl time.Duration, l *zap.Logger) *CachedQuestionnaires {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if l == nil {
		l = zap.NewNop()
	}
	return &CachedQuestionnaires{inner: inner, cache: c, ttl: ttl, log: l}
}

func profileKey(userID string) string { return "questionnaire:profile:" + userID }

func (r *CachedQuestionnaires) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	return cache.GetOrLoadJSON(r.cache, ctx, profileKey(userID), r.ttl, func(ctx context.Context) (*domain.Profile, error) {
		return r.inner.FindByUserID(ctx, userID)
	})
}

func (r *CachedQuestionnaires) Save(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, error) {
	p, err := r.inner.Save(ctx, userID, in)
	r.invalidate(ctx, userID)
	return p, err
}

func (r *CachedQuestionnaires) Update(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, error) {
	p, err := r.inner.Update(ctx, userID, in)
	r.invalidate(ctx, userID)
	return p, err
}

func (r *CachedQuestionnaires) DeleteByUserID(ctx context.Context, userID string) error {
	err := r.inner.DeleteByUserID(ctx, userID)
	r.invalidate(ctx, userID)
	return err
}

// 删除失败只记日志，最迟 ttl 后自愈
func (r *CachedQuestionnaires) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, profileKey(userID)); err != nil {
		r.log.Warn("questionnaire cache invalidate", zap.String("user_id", userID), zap.Error(err))
	}
}
