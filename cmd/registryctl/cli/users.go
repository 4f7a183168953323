package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shareregistry/backoffice/internal/auth"
)

// UsersCLI seeds back-office accounts.
type UsersCLI struct {
	repo auth.Repository
}

// NewUsersCLI wraps the users repository.
func NewUsersCLI(repo auth.Repository) *UsersCLI {
	return &UsersCLI{repo: repo}
}

// CreateUser hashes password and inserts an active user.
func (c *UsersCLI) CreateUser(ctx context.Context, email, password string, out io.Writer) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user, err := c.repo.CreateUser(ctx, email, hash)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created user %d <%s>\n", user.ID, user.Email)
	return nil
}
