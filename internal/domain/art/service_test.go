package art

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, id int64) (*Piece, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Piece), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, piece *Piece) (int64, error) {
	args := m.Called(ctx, piece)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, piece *Piece) error {
	args := m.Called(ctx, piece)
	return args.Error(0)
}

func (m *MockRepository) UpdateOwner(ctx context.Context, id int64, owner, newOwner string) error {
	args := m.Called(ctx, id, owner, newOwner)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64, owner string) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

func (m *MockRepository) ListByOwner(ctx context.Context, owner string) ([]Piece, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Piece), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

func storedPiece() *Piece {
	return &Piece{
		ID:          1,
		Title:       "Mona Lisa",
		Owner:       "alice",
		Size:        500,
		CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Description: "Famous painting",
		Tags:        []string{"classic", "masterpiece"},
	}
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Piece) bool {
		return p.Owner == "alice" && p.Title == "Mona Lisa" && p.Size == 500
	})).Return(int64(1), nil)

	id, err := svc.Create(context.Background(), "alice", "Mona Lisa", 500, "Famous painting", []string{"classic", "masterpiece"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
	repo.AssertExpectations(t)
}

func TestService_Create_InvalidFieldsNeverReachRepo(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		size        int64
		description string
		tags        []string
		wantErr     error
	}{
		{"empty title", "", 500, "desc", []string{"t"}, ErrInvalidTitle},
		{"zero size", "title", 0, "desc", []string{"t"}, ErrInvalidSize},
		{"size at bound", "title", 1_000_000_000, "desc", []string{"t"}, ErrInvalidSize},
		{"empty description", "title", 500, "", []string{"t"}, ErrInvalidTitle},
		{"no tags", "title", 500, "desc", nil, ErrInvalidTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo)

			id, err := svc.Create(context.Background(), "alice", tt.title, tt.size, tt.description, tt.tags)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, int64(0), id)
			// A rejected create must not touch the store, so no ID is consumed.
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Get(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(1)).Return(storedPiece(), nil)

	piece, err := svc.Get(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Mona Lisa", piece.Title)
	assert.Equal(t, "alice", piece.Owner)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(42)).Return(nil, ErrNotFound)

	_, err := svc.Get(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	current := storedPiece()
	repo.On("Get", mock.Anything, int64(1)).Return(current, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Piece) bool {
		// Owner, ID and CreatedAt must survive the update untouched.
		return p.ID == 1 && p.Owner == "alice" && p.CreatedAt.Equal(current.CreatedAt) &&
			p.Title == "La Gioconda" && p.Size == 600
	})).Return(nil)

	err := svc.Update(context.Background(), "alice", 1, "La Gioconda", 600, "Renamed", []string{"classic"})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Update_OrderingNotFoundFirst(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(9)).Return(nil, ErrNotFound)

	// Every other argument is invalid, but a missing piece wins.
	err := svc.Update(context.Background(), "", 9, "", 0, "", nil)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_OrderingUnauthorizedBeforeValidation(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(1)).Return(storedPiece(), nil)

	// Fields are invalid too, but the ownership check comes first.
	err := svc.Update(context.Background(), "mallory", 1, "", 0, "", nil)

	assert.ErrorIs(t, err, ErrUnauthorized)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_InvalidFieldsLeaveStoreUntouched(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(1)).Return(storedPiece(), nil)

	err := svc.Update(context.Background(), "alice", 1, "ok", 0, "desc", []string{"t"})

	assert.ErrorIs(t, err, ErrInvalidSize)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_ConcurrentTransferSurfacesUnauthorized(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	// The piece was alice's when loaded, but the conditional write reports it
	// changed hands before the statement ran.
	repo.On("Get", mock.Anything, int64(1)).Return(storedPiece(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(ErrUnauthorized)

	err := svc.Update(context.Background(), "alice", 1, "New Title", 600, "desc", []string{"t"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_Transfer_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(1)).Return(storedPiece(), nil)
	repo.On("UpdateOwner", mock.Anything, int64(1), "alice", "bob").Return(nil)

	err := svc.Transfer(context.Background(), "alice", 1, "bob")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Transfer_RecipientNotValidated(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(1)).Return(storedPiece(), nil)
	repo.On("UpdateOwner", mock.Anything, int64(1), "alice", "").Return(nil)

	// An empty recipient is accepted; the registry does not reject it.
	err := svc.Transfer(context.Background(), "alice", 1, "")

	assert.NoError(t, err)
}

func TestService_Transfer_NonOwner(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(1)).Return(storedPiece(), nil)

	err := svc.Transfer(context.Background(), "bob", 1, "carol")

	assert.ErrorIs(t, err, ErrUnauthorized)
	repo.AssertNotCalled(t, "UpdateOwner", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(1)).Return(storedPiece(), nil)
	repo.On("Delete", mock.Anything, int64(1), "alice").Return(nil)

	err := svc.Delete(context.Background(), "alice", 1)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(7)).Return(nil, ErrNotFound)

	err := svc.Delete(context.Background(), "alice", 7)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NonOwner(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Get", mock.Anything, int64(1)).Return(storedPiece(), nil)

	err := svc.Delete(context.Background(), "mallory", 1)

	assert.ErrorIs(t, err, ErrUnauthorized)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_RepoError(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("connection lost"))

	id, err := svc.Create(context.Background(), "alice", "title", 500, "desc", []string{"t"})

	assert.Error(t, err)
	assert.Equal(t, int64(0), id)
}
