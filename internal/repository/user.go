package repository

import (
	"context"
	"errors"

	"github.com/jaekwang-park/userpool-auth/internal/model"
)

var ErrNotFound = errors.New("not found")

type UserRepository interface {
	RecordSignIn(ctx context.Context, cognitoSub, username, email string) (model.User, error)
	GetByCognitoSub(ctx context.Context, cognitoSub string) (model.User, error)
}
