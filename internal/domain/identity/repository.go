package identity

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, login, passwordHash string) (int, error)
	FindByLogin(ctx context.Context, login string) (Identity, error)
}
