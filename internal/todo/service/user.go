package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/go-playground/validator/v10"
)

// Registration is the sign-up form. The password is further checked against
// the password policy after tag validation.
type Registration struct {
	Email       string `validate:"required,email,max=256"`
	Password    string `validate:"required"`
	FirstName   string `validate:"required,max=100"`
	LastName    string `validate:"required,max=100"`
	Gender      string `validate:"required,max=32"`
	PhoneNumber string `validate:"omitempty,max=32"`
	Age         int    `validate:"gte=0,lte=150"`
}

type roleAssignment struct {
	Email    string `validate:"required,email"`
	RoleName string `validate:"required,max=64"`
}

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	User  domain.User
	Roles []string
	Token string
}

// UserService owns accounts: sign-up, login and role grants.
type UserService struct {
	Store  store.Store
	Tokens *TokenIssuer

	validate *validator.Validate
}

// NewUserService returns a UserService backed by s that signs with tokens.
func NewUserService(s store.Store, tokens *TokenIssuer) *UserService {
	return &UserService{Store: s, Tokens: tokens, validate: newValidator()}
}

// Register validates in, creates the user and grants the Default role in one
// transaction. Every problem found is reported in a single
// *ValidationError; a taken email is one of those problems.
func (s *UserService) Register(ctx context.Context, in Registration) (domain.User, error) {
	in.Email = strings.TrimSpace(in.Email)

	var reasons []string
	if err := s.validate.Struct(in); err != nil {
		reasons = append(reasons, reasonsFor(err)...)
	}
	if in.Password != "" {
		reasons = append(reasons, passwordReasons(in.Password)...)
	}
	if in.Email != "" {
		_, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
		switch {
		case err == nil:
			reasons = append(reasons, takenReason(in.Email))
		case !errors.Is(err, store.ErrNotFound):
			return domain.User{}, fmt.Errorf("lookup email: %w", err)
		}
	}
	if len(reasons) > 0 {
		return domain.User{}, invalid(nil, reasons...)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:              idx.New().String(),
		Email:           in.Email,
		NormalizedEmail: domain.NormalizeEmail(in.Email),
		Username:        in.Email,
		PasswordHash:    hash,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Gender:          in.Gender,
		Age:             in.Age,
		PhoneNumber:     in.PhoneNumber,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return grantRole(ctx, tx, user.ID, domain.RoleDefault)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// lost a race with a concurrent registration
		return domain.User{}, invalid(err, takenReason(in.Email))
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("register user: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return user, nil
}

func takenReason(email string) string {
	return fmt.Sprintf("Email '%s' is already taken.", email)
}

// Login checks credentials and issues a token. Unknown email, wrong password
// and internal failures all return ErrInvalidCredentials; the latter are
// logged.
func (s *UserService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("login: user lookup failed", "error", err)
		}
		// equalise timing with the known-user path
		_ = cryptox.VerifyPassword(password, dummyHash())
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("login: password verification failed", "user_id", user.ID, "error", err)
		}
		return LoginResult{}, ErrInvalidCredentials
	}

	roles, err := s.Store.Roles().ListUserRoles(ctx, user.ID)
	if err != nil {
		log.Error("login: role lookup failed", "user_id", user.ID, "error", err)
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user, roles)
	if err != nil {
		log.Error("login: token issuance failed", "user_id", user.ID, "error", err)
		return LoginResult{}, ErrInvalidCredentials
	}

	return LoginResult{User: user, Roles: roles, Token: token}, nil
}

// AssignRole grants roleName to the user with email, creating the role on
// first use. Granting a role the user already holds succeeds. An unknown
// email is a *ValidationError wrapping ErrUserNotFound.
func (s *UserService) AssignRole(ctx context.Context, email, roleName string) error {
	in := roleAssignment{Email: strings.TrimSpace(email), RoleName: strings.TrimSpace(roleName)}
	if err := s.validate.Struct(in); err != nil {
		return invalid(nil, reasonsFor(err)...)
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByEmail(ctx, in.Email)
		if errors.Is(err, store.ErrNotFound) {
			return invalid(ErrUserNotFound, fmt.Sprintf("User with email '%s' does not exist.", in.Email))
		}
		if err != nil {
			return err
		}
		return grantRole(ctx, tx, user.ID, in.RoleName)
	})
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}

	slogx.FromContext(ctx).Info("role assigned", "email", in.Email, "role", in.RoleName)
	return nil
}

// FindByEmail returns the user registered under email, matched ignoring case.
func (s *UserService) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

func grantRole(ctx context.Context, tx store.Tx, userID, name string) error {
	role, err := tx.Roles().GetRoleByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		role = domain.Role{ID: idx.New().String(), Name: name}
		err = tx.Roles().CreateRole(ctx, role)
	}
	if err != nil {
		return fmt.Errorf("ensure role %q: %w", name, err)
	}
	return tx.Roles().AddUserRole(ctx, userID, role.ID)
}

var (
	dummyOnce sync.Once
	dummy     string
)

func dummyHash() string {
	dummyOnce.Do(func() {
		dummy, _ = cryptox.HashPassword("not-a-real-password")
	})
	return dummy
}
