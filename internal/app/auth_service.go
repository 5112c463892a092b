package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"doubtconnect/internal/model"
)

var (
	ErrEmailExists       = errors.New("a user with this email already exists")
	ErrUsernameExists    = errors.New("this username is already taken")
	ErrInvalidCredential = errors.New("enter a valid username/password")
	ErrNotVerified       = errors.New("email is not verified, please click on resend")
	ErrAlreadyVerified   = errors.New("account is already verified")
	ErrTokenRejected     = errors.New("verification link is invalid or has expired")
	ErrResendCooldown    = errors.New("a verification email was sent recently, try again later")
)

const bcryptCost = 10

// UserStore is the persistence surface the services need from the
// credential store.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	MarkVerified(ctx context.Context, id uint) error
	UpdateProfile(ctx context.Context, id uint, update model.ProfileUpdate) (*model.User, error)
}

// VerificationTokenStore issues and consumes single-use email tokens.
type VerificationTokenStore interface {
	Issue(ctx context.Context, email string, userID uint) (string, error)
	Consume(ctx context.Context, email, token string) (uint, bool, error)
	AllowResend(ctx context.Context, email string) (bool, error)
}

type Mailer interface {
	SendVerification(ctx context.Context, to, username, link string) error
}

// EventPublisher receives auth lifecycle events. Publishing is best-effort:
// failures are logged and never fail the calling operation.
type EventPublisher interface {
	Publish(ctx context.Context, event model.AuthEvent) error
}

type AuthConfig struct {
	JWTSecret       string
	JWTExpiry       time.Duration
	EmailDomain     string
	ExternalBaseURL string
}

type AuthService struct {
	users  UserStore
	tokens VerificationTokenStore
	mailer Mailer
	events EventPublisher
	cfg    AuthConfig

	signToken func(secret string, expiry time.Duration, userID uint) (string, error)
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	City      string
}

type LoginInput struct {
	Username string
	Password string
}

type RegisterResult struct {
	UserID  uint
	Message string
}

type LoginResult struct {
	AuthToken string
}

func NewAuthService(users UserStore, tokens VerificationTokenStore, mailer Mailer, events EventPublisher, cfg AuthConfig, signToken func(string, time.Duration, uint) (string, error)) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		mailer:    mailer,
		events:    events,
		cfg:       cfg,
		signToken: signToken,
	}
}

// Register creates an unverified account, issues a verification token, and
// mails the confirmation link. The two writes have no transaction around
// them and mail failure does not roll them back: the persisted user stays
// unverified and the resend-token flow is the recovery path. A mail failure
// still fails the request, never a false success.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if errs := validateRegister(input, s.cfg.EmailDomain); len(errs) > 0 {
		return nil, errs
	}

	existingByEmail, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingByEmail != nil {
		return nil, ErrEmailExists
	}

	existingByName, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existingByName != nil {
		return nil, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		City:         input.City,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(ctx, user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	link := s.verificationLink(user.Email, token)
	if err := s.mailer.SendVerification(ctx, user.Email, user.Username, link); err != nil {
		return nil, fmt.Errorf("send verification email failed: %w", err)
	}

	s.publish(ctx, model.AuthEvent{UserID: user.ID, Kind: model.AuthEventRegistered, Email: user.Email})

	return &RegisterResult{
		UserID: user.ID,
		Message: "A verification email has been sent to " + user.Email +
			". It will expire after one day. If you had not received the verification email, click on \"resend token\".",
	}, nil
}

// Login checks the password and the verification flag and issues a session
// credential. Unknown username and wrong password return the same error so
// responses do not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if errs := validateLogin(input); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredential
	}

	if !user.Verified {
		return nil, ErrNotVerified
	}

	token, err := s.signToken(s.cfg.JWTSecret, s.cfg.JWTExpiry, user.ID)
	if err != nil {
		return nil, fmt.Errorf("sign session token failed: %w", err)
	}

	s.publish(ctx, model.AuthEvent{UserID: user.ID, Kind: model.AuthEventLogin, Email: user.Email})

	return &LoginResult{AuthToken: token}, nil
}

// ConfirmEmail consumes the emailed token and flips the verification flag.
func (s *AuthService) ConfirmEmail(ctx context.Context, email, token string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	userID, ok, err := s.tokens.Consume(ctx, email, token)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTokenRejected
	}

	if err := s.users.MarkVerified(ctx, userID); err != nil {
		return err
	}

	s.publish(ctx, model.AuthEvent{UserID: userID, Kind: model.AuthEventVerified, Email: email})
	return nil
}

// ResendToken reissues a verification token for an unverified account and
// mails it again. The response for an unknown email is indistinguishable
// from success; a per-email cooldown stops mail floods.
func (s *AuthService) ResendToken(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	if user.Verified {
		return ErrAlreadyVerified
	}

	allowed, err := s.tokens.AllowResend(ctx, email)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrResendCooldown
	}

	token, err := s.tokens.Issue(ctx, email, user.ID)
	if err != nil {
		return err
	}

	link := s.verificationLink(email, token)
	if err := s.mailer.SendVerification(ctx, email, user.Username, link); err != nil {
		return fmt.Errorf("send verification email failed: %w", err)
	}
	return nil
}

func (s *AuthService) verificationLink(email, token string) string {
	return fmt.Sprintf("%s/confirmation/%s/%s",
		strings.TrimSuffix(s.cfg.ExternalBaseURL, "/"),
		url.PathEscape(email),
		token,
	)
}

func (s *AuthService) publish(ctx context.Context, event model.AuthEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("publish auth event %s failed: %v", event.Kind, err)
	}
}
