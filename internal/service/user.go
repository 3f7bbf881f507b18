package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaekwang-park/userpool-auth/internal/model"
	"github.com/jaekwang-park/userpool-auth/internal/repository"
)

// CurrentUser returns the mirrored record of the user with the given sub.
func (s *AuthService) CurrentUser(ctx context.Context, cognitoSub string) (model.User, error) {
	if s.userRepo == nil {
		return model.User{}, ErrMirrorDisabled
	}

	u, err := s.userRepo.GetByCognitoSub(ctx, cognitoSub)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
