// Package services contains the server-side business logic. This file
// implements UserService, which orchestrates the password policy, the token
// service, the auth gate, and the user directory behind the four operations
// of the API: createUser, login, user, and users.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userbook/internal/common"
	"github.com/dmitrijs2005/userbook/internal/logging"
	"github.com/dmitrijs2005/userbook/internal/server/auth"
	"github.com/dmitrijs2005/userbook/internal/server/models"
	"github.com/dmitrijs2005/userbook/internal/server/pagination"
	"github.com/dmitrijs2005/userbook/internal/server/passwords"
	usersrepo "github.com/dmitrijs2005/userbook/internal/server/repositories/users"
)

// CreateUserInput is the validated argument set of the createUser mutation.
type CreateUserInput struct {
	Name      string
	Email     string
	Password  string
	BirthDate *string
}

// LoginInput is the validated argument set of the login mutation.
type LoginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginResult bundles the authenticated user and the issued token.
type LoginResult struct {
	User  *models.User
	Token string
}

// UserPage is one page of the sorted user listing plus its window flags.
type UserPage struct {
	Users  []models.User
	Window pagination.Window
}

// UserService implements the business rules of the user API. Every operation
// is a single stateless request/response transaction.
type UserService struct {
	repo   usersrepo.Repository
	policy *passwords.Policy
	tokens *auth.TokenService
	gate   *auth.Gate
	logger logging.Logger
}

func NewUserService(repo usersrepo.Repository, policy *passwords.Policy, tokens *auth.TokenService, gate *auth.Gate, logger logging.Logger) *UserService {
	return &UserService{
		repo:   repo,
		policy: policy,
		tokens: tokens,
		gate:   gate,
		logger: logger.With("module", "user_service"),
	}
}

// CreateUser registers a new user: password policy first, then the friendly
// duplicate-e-mail check, then hash and create. The existence check and the
// insert are not atomic; the unique constraint in storage decides races, and
// the loser surfaces a persistence failure.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if !s.policy.Validate(in.Password) {
		return nil, common.NewWeakPassword()
	}

	exists, err := s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, common.NewPersistenceFailure(err)
	}
	if exists {
		return nil, common.NewEmailTaken()
	}

	hash, err := s.policy.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &models.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		BirthDate: in.BirthDate,
	})
	if err != nil {
		return nil, common.NewPersistenceFailure(err)
	}

	s.logger.Info(ctx, "user created", "email", user.Email)
	return user, nil
}

// Login verifies the credentials and issues a bearer token. The token expiry
// is selected by the rememberMe flag.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewUserNotFound()
		}
		return nil, common.NewInternal(err)
	}

	ok, err := s.policy.Verify(in.Password, user.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewInvalidCredentials()
	}

	token, err := s.tokens.Issue(user.ID, user.Email, in.RememberMe)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "email", user.Email)
	return &LoginResult{User: user, Token: token}, nil
}

// User returns the user with the given id, addresses included. The gate runs
// first, before any storage access; any authenticated caller may fetch any
// id.
func (s *UserService) User(ctx context.Context, id int64) (*models.User, error) {
	if _, err := s.gate.Authenticate(ctx); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewUserNotFound()
		}
		return nil, common.NewInternal(err)
	}
	return user, nil
}

// Users returns one page of the name-sorted user listing. The gate runs
// first, then the paging parameters are validated before storage is touched.
func (s *UserService) Users(ctx context.Context, params pagination.Params) (*UserPage, error) {
	if _, err := s.gate.Authenticate(ctx); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	list, total, err := s.repo.ListSortedByName(ctx, params.Skip, params.PerPage)
	if err != nil {
		return nil, common.NewInternal(err)
	}

	return &UserPage{
		Users:  list,
		Window: pagination.NewWindow(params, len(list), int(total)),
	}, nil
}
