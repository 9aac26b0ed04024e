package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, login, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, login, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (string, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Error(1)
}

func TestService_CreateAndValidate(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	var storedHash string
	repo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).Return(nil)

	token, err := svc.Create(context.Background(), "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	// The raw token must never be what gets persisted.
	assert.NotEqual(t, token, storedHash)

	repo.On("Validate", mock.Anything, storedHash).Return("alice", nil)

	login, err := svc.Validate(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", login)
}

func TestService_Validate_Unknown(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("Validate", mock.Anything, mock.AnythingOfType("string")).Return("", errors.New("no rows"))

	_, err := svc.Validate(context.Background(), "bogus")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
