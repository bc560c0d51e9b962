package service

import (
	"context"

	"hair-scanner-api/internal/domain"
)

type mockUserRepo struct {
	FindByIDFunc      func(ctx context.Context, id string) (*domain.UserRecord, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.UserRecord, error)
	CreateFunc        func(ctx context.Context, in domain.NewUser) (*domain.UserView, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	DeleteFunc        func(ctx context.Context, id string) error
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*domain.UserRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, in domain.NewUser) (*domain.UserView, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &domain.UserView{ID: "user-1", Email: in.Email, DisplayName: in.DisplayName}, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockHasher struct {
	HashFunc    func(pw string) (string, error)
	CompareFunc func(pw, hashed string) (bool, error)

	compared []string
}

func (m *mockHasher) Hash(pw string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(pw)
	}
	return "hashed:" + pw, nil
}

func (m *mockHasher) Compare(pw, hashed string) (bool, error) {
	m.compared = append(m.compared, hashed)
	if m.CompareFunc != nil {
		return m.CompareFunc(pw, hashed)
	}
	return hashed == "hashed:"+pw, nil
}

type mockSigner struct {
	SignFunc func(sub, email string) (string, error)
}

func (m *mockSigner) Sign(sub, email string) (string, error) {
	if m.SignFunc != nil {
		return m.SignFunc(sub, email)
	}
	return "token:" + sub + ":" + email, nil
}

type mockQuestionnaireRepo struct {
	FindByUserIDFunc   func(ctx context.Context, userID string) (*domain.Profile, error)
	SaveFunc           func(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, error)
	UpdateFunc         func(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, error)
	DeleteByUserIDFunc func(ctx context.Context, userID string) error
}

func (m *mockQuestionnaireRepo) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockQuestionnaireRepo) Save(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, userID, in)
	}
	return &domain.Profile{ID: "p-1", UserID: userID, ScalpCondition: in.ScalpCondition}, nil
}

func (m *mockQuestionnaireRepo) Update(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, in)
	}
	return &domain.Profile{ID: "p-1", UserID: userID, ScalpCondition: in.ScalpCondition}, nil
}

func (m *mockQuestionnaireRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}
