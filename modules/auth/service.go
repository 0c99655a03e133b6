package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/casaluz/website/pkg/clientip"
	"github.com/casaluz/website/pkg/email"
	"github.com/casaluz/website/pkg/i18n"
	"github.com/casaluz/website/pkg/sanitizer"
	"github.com/casaluz/website/pkg/token"
	"github.com/casaluz/website/pkg/validator"
)

// Service implements the account flows: sign up with email verification,
// sign in, and verification token redemption.
type Service struct {
	cfg        Config
	storage    Storage
	mailer     email.Sender
	translator *i18n.Translator
	log        *slog.Logger
}

func NewService(cfg Config, storage Storage, mailer email.Sender, translator *i18n.Translator, log *slog.Logger) *Service {
	return &Service{
		cfg:        cfg,
		storage:    storage,
		mailer:     mailer,
		translator: translator,
		log:        log,
	}
}

// verificationClaims is the payload of a signed verification link token.
type verificationClaims struct {
	UserID    string `json:"uid"`
	Email     string `json:"email"`
	Purpose   string `json:"purpose"`
	ExpiresAt int64  `json:"exp"`
}

const purposeEmailVerification = "email-verification"

// SignUp validates the input, creates the account, and sends the
// verification email in the caller's locale.
func (s *Service) SignUp(ctx context.Context, name, rawEmail, password string) (*User, error) {
	addr := sanitizer.TrimToLower(rawEmail)
	name = sanitizer.Apply(name,
		sanitizer.StripHTML,
		sanitizer.RemoveControlChars,
		sanitizer.CollapseWhitespace,
	)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.MaxLen("name", name, 100),
		validator.Required("email", addr),
		validator.ValidEmail("email", addr),
		validator.Required("password", password),
		validator.StrongPassword("password", password, validator.DefaultPasswordStrength()),
	); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &User{
		ID:        uuid.New(),
		Email:     addr,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.CreateUser(ctx, user, string(hash)); err != nil {
		return nil, err
	}

	if err := s.SendVerification(ctx, user); err != nil {
		// The account exists; a failed email must not roll it back. The
		// user can request a new link from the verification page.
		s.log.ErrorContext(ctx, "failed to send verification email",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)
	}

	return user, nil
}

// SignIn checks the credentials and returns the account.
func (s *Service) SignIn(ctx context.Context, rawEmail, password string) (*User, error) {
	addr := sanitizer.TrimToLower(rawEmail)

	if err := validator.Apply(
		validator.Required("email", addr),
		validator.ValidEmail("email", addr),
		validator.Required("password", password),
	); err != nil {
		return nil, err
	}

	user, hash, err := s.storage.UserByEmail(ctx, addr)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Same failure as a wrong password so the response does not
			// reveal which emails are registered.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.log.WarnContext(ctx, "sign-in failed",
			slog.String("ip", clientip.FromContext(ctx)),
		)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Verify redeems a verification token and marks the account verified.
func (s *Service) Verify(ctx context.Context, rawToken string) (*User, error) {
	claims, err := token.Parse[verificationClaims](rawToken, s.cfg.TokenSecret)
	if err != nil {
		return nil, errors.Join(ErrTokenInvalid, err)
	}

	if claims.Purpose != purposeEmailVerification {
		return nil, ErrTokenInvalid
	}
	if time.Now().Unix() > claims.ExpiresAt {
		return nil, ErrTokenExpired
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	// The token is bound to the address it was issued for; a changed email
	// invalidates outstanding links.
	if !strings.EqualFold(user.Email, claims.Email) {
		return nil, ErrTokenInvalid
	}

	if err := s.storage.MarkEmailVerified(ctx, user.ID, time.Now()); err != nil {
		return nil, err
	}

	verifiedAt := time.Now()
	user.EmailVerifiedAt = &verifiedAt
	return user, nil
}

// SendVerification issues a fresh signed link and emails it.
func (s *Service) SendVerification(ctx context.Context, user *User) error {
	if user.IsVerified() {
		return ErrAlreadyVerified
	}

	signed, err := token.Generate(verificationClaims{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Purpose:   purposeEmailVerification,
		ExpiresAt: time.Now().Add(s.cfg.VerificationTTL).Unix(),
	}, s.cfg.TokenSecret)
	if err != nil {
		return err
	}

	locale := i18n.GetLocale(ctx)
	if locale == "" {
		locale = s.translator.DefaultLang()
	}

	link := s.cfg.BaseURL + i18n.LocalizePath(locale, "/verify-email") + "?token=" + url.QueryEscape(signed)

	return s.mailer.Send(ctx, email.Message{
		To:      user.Email,
		Subject: s.translator.T(locale, "auth.verification_email.subject"),
		BodyHTML: fmt.Sprintf("<p>%s</p><p><a href=%q>%s</a></p>",
			s.translator.T(locale, "auth.verification_email.body", "name", user.Name),
			link,
			s.translator.T(locale, "auth.verification_email.cta"),
		),
		Tag: "email-verification",
	})
}
