package client

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

type Client interface {
	Me(ctx context.Context) (models.User, error)
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Register(ctx context.Context, username, email string, password []byte) (models.User, error)
	UpdateUser(ctx context.Context, patch models.UserPatch) (models.UserFields, error)
	DeleteUser(ctx context.Context, password []byte) error
	Logout(ctx context.Context) error
	Close() error
}
