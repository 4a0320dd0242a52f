package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authinfra "github.com/garagehub/marketplace-api/internal/auth"
	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/mail"
	"github.com/garagehub/marketplace-api/internal/models"
)

const minPasswordLen = 8

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error
}

type TokenStore interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}

// PasswordReset runs the two-step reset flow: a request mails a
// single-use token, a confirm exchanges it for a new password. Request
// never reveals whether the email has an account.
type PasswordReset struct {
	users    UserRepository
	tokens   TokenStore
	mailer   mail.Sender
	resetURL string
}

func NewPasswordReset(
	users UserRepository,
	tokens TokenStore,
	mailer mail.Sender,
	resetURL string,
) *PasswordReset {
	return &PasswordReset{
		users:    users,
		tokens:   tokens,
		mailer:   mailer,
		resetURL: resetURL,
	}
}

// Request issues a reset token for the account, if one exists. An unknown
// email is a silent success.
func (uc *PasswordReset) Request(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := uc.tokens.Issue(ctx, user.ID)
	if err != nil {
		return err
	}

	body := "Click the link to reset your password:\n" +
		uc.resetURL + "?token=" + token +
		"\n\nIf you didn't request this, ignore this email."

	return uc.mailer.Send(user.Email, "Password reset", body)
}

// Confirm consumes the token and sets the new password.
func (uc *PasswordReset) Confirm(ctx context.Context, token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return httperr.ErrInvalidInput("new_password", "password fields do not match")
	}
	if len(newPassword) < minPasswordLen {
		return httperr.ErrInvalidInput("new_password", "must be at least 8 characters")
	}

	userID, err := uc.tokens.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, authinfra.ErrTokenNotFound) {
			return httperr.ErrInvalidInput("token", "invalid or expired reset token")
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return uc.users.UpdatePasswordHash(ctx, userID, string(hash))
}
