package art

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"artregistry/internal/app/server/api/http/middleware/auth"
	"artregistry/internal/domain/art"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, caller, title string, size int64, description string, tags []string) (int64, error) {
	args := m.Called(ctx, caller, title, size, description, tags)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int64) (*art.Piece, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*art.Piece), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, caller string, id int64, title string, size int64, description string, tags []string) error {
	args := m.Called(ctx, caller, id, title, size, description, tags)
	return args.Error(0)
}

func (m *MockService) Transfer(ctx context.Context, caller string, id int64, newOwner string) error {
	args := m.Called(ctx, caller, id, newOwner)
	return args.Error(0)
}

func (m *MockService) Delete(ctx context.Context, caller string, id int64) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *MockService) List(ctx context.Context, owner string) ([]art.Piece, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]art.Piece), args.Error(1)
}

type MockAccess struct {
	mock.Mock
}

func (m *MockAccess) HasAccess(ctx context.Context, artID int64, principal string) (bool, error) {
	args := m.Called(ctx, artID, principal)
	return args.Bool(0), args.Error(1)
}

func authCtx(caller string) context.Context {
	return auth.WithCaller(context.Background(), caller)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	assert.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, new(MockAccess), nil, nil)

		svc.On("Create", mock.Anything, "alice", "Mona Lisa", int64(500), "Famous painting", []string{"classic"}).
			Return(int64(1), nil)

		input := &createInput{}
		input.Body = pieceRequest{Title: "Mona Lisa", Size: 500, Description: "Famous painting", Tags: []string{"classic"}}

		out, err := h.create(authCtx("alice"), input)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), out.Body.ID)
		assert.Equal(t, "Ok", out.Body.Status)
	})

	t.Run("no caller", func(t *testing.T) {
		h := NewHandler(new(MockService), new(MockAccess), nil, nil)

		_, err := h.create(context.Background(), &createInput{})

		assert.Equal(t, 401, statusOf(t, err))
	})

	t.Run("invalid size maps to 422", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, new(MockAccess), nil, nil)

		svc.On("Create", mock.Anything, "alice", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), art.ErrInvalidSize)

		input := &createInput{}
		input.Body = pieceRequest{Title: "t", Size: 0, Description: "d", Tags: []string{"x"}}

		_, err := h.create(authCtx("alice"), input)

		assert.Equal(t, 422, statusOf(t, err))
	})
}

func TestHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, new(MockAccess), nil, nil)

		svc.On("Get", mock.Anything, int64(1)).Return(&art.Piece{ID: 1, Title: "Mona Lisa", Owner: "alice"}, nil)

		out, err := h.get(authCtx("alice"), &getInput{ID: 1})

		assert.NoError(t, err)
		assert.Equal(t, "Mona Lisa", out.Body.Piece.Title)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, new(MockAccess), nil, nil)

		svc.On("Get", mock.Anything, int64(9)).Return(nil, art.ErrNotFound)

		_, err := h.get(authCtx("alice"), &getInput{ID: 9})

		assert.Equal(t, 404, statusOf(t, err))
	})
}

func TestHandler_Update_NonOwnerMapsTo403(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, new(MockAccess), nil, nil)

	svc.On("Update", mock.Anything, "mallory", int64(1), mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(art.ErrUnauthorized)

	input := &updateInput{ID: 1}
	input.Body = pieceRequest{Title: "t", Size: 1, Description: "d", Tags: []string{"x"}}

	_, err := h.update(authCtx("mallory"), input)

	assert.Equal(t, 403, statusOf(t, err))
}

func TestHandler_Transfer(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, new(MockAccess), nil, nil)

	svc.On("Transfer", mock.Anything, "alice", int64(1), "bob").Return(nil)

	input := &transferInput{ID: 1}
	input.Body = transferRequest{NewOwner: "bob"}

	out, err := h.transfer(authCtx("alice"), input)

	assert.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
	svc.AssertExpectations(t)
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, new(MockAccess), nil, nil)

	svc.On("Delete", mock.Anything, "alice", int64(1)).Return(nil)

	out, err := h.delete(authCtx("alice"), &deleteInput{ID: 1})

	assert.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
}

func TestHandler_HasAccess(t *testing.T) {
	accessSvc := new(MockAccess)
	h := NewHandler(new(MockService), accessSvc, nil, nil)

	accessSvc.On("HasAccess", mock.Anything, int64(1), "bob").Return(false, nil)

	out, err := h.hasAccess(authCtx("alice"), &accessInput{ID: 1, Principal: "bob"})

	assert.NoError(t, err)
	assert.False(t, out.Body.Granted)
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, new(MockAccess), nil, nil)

	svc.On("List", mock.Anything, "alice").Return([]art.Piece{{ID: 1}, {ID: 2}}, nil)

	out, err := h.list(authCtx("alice"), nil)

	assert.NoError(t, err)
	assert.Equal(t, 2, out.Body.Total)
}
