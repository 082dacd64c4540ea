package service

import (
	"context"
	"fmt"

	"github.com/adenikin/go-note-keeper/internal/adapter"
	"github.com/adenikin/go-note-keeper/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

// Register implements ClientAuthService. Credential validation beyond
// non-emptiness is the server's job; the client only refuses requests that
// could never succeed.
func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	if user.Login == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	registeredUser, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return registeredUser, nil
}

// Login implements ClientAuthService.
func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if user.Login == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return foundUser, nil
}
