package graphql

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/userbook/internal/common"
	"github.com/dmitrijs2005/userbook/internal/server/models"
	"github.com/dmitrijs2005/userbook/internal/server/pagination"
	"github.com/dmitrijs2005/userbook/internal/server/services"
	graphql "github.com/graph-gophers/graphql-go"
)

// Resolver is the root resolver for both queries and mutations.
type Resolver struct {
	svc *services.UserService
}

func NewResolver(svc *services.UserService) *Resolver {
	return &Resolver{svc: svc}
}

// --- inputs ---

type userInput struct {
	Name      string
	Email     string
	Password  string
	BirthDate *string
}

type loginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

type usersInput struct {
	UsersPerPage *int32
	SkippedUsers *int32
}

// --- queries ---

func (r *Resolver) Hello() []*simpleTextResolver {
	return []*simpleTextResolver{{content: "Hello world!"}}
}

func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) (*userResolver, error) {
	id, err := strconv.ParseInt(string(args.ID), 10, 64)
	if err != nil {
		return nil, common.NewUserNotFound()
	}

	user, err := r.svc.User(ctx, id)
	if err != nil {
		return nil, err
	}
	return &userResolver{user: user}, nil
}

func (r *Resolver) Users(ctx context.Context, args struct{ Data usersInput }) (*usersResponseResolver, error) {
	// The schema declares defaults for both fields; the fallbacks here cover
	// explicit nulls.
	params := pagination.Params{PerPage: 10, Skip: 0}
	if args.Data.UsersPerPage != nil {
		params.PerPage = int(*args.Data.UsersPerPage)
	}
	if args.Data.SkippedUsers != nil {
		params.Skip = int(*args.Data.SkippedUsers)
	}

	page, err := r.svc.Users(ctx, params)
	if err != nil {
		return nil, err
	}
	return &usersResponseResolver{page: page}, nil
}

// --- mutations ---

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Data userInput }) (*userResolver, error) {
	user, err := r.svc.CreateUser(ctx, services.CreateUserInput{
		Name:      args.Data.Name,
		Email:     args.Data.Email,
		Password:  args.Data.Password,
		BirthDate: args.Data.BirthDate,
	})
	if err != nil {
		return nil, err
	}
	return &userResolver{user: user}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Data loginInput }) (*loginResponseResolver, error) {
	result, err := r.svc.Login(ctx, services.LoginInput{
		Email:      args.Data.Email,
		Password:   args.Data.Password,
		RememberMe: args.Data.RememberMe,
	})
	if err != nil {
		return nil, err
	}
	return &loginResponseResolver{result: result}, nil
}

// --- field resolvers ---

type simpleTextResolver struct {
	content string
}

func (r *simpleTextResolver) Content() string { return r.content }

// userResolver projects the public fields of a user. The password hash has
// no corresponding schema field and can never leak.
type userResolver struct {
	user *models.User
}

func (r *userResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatInt(r.user.ID, 10))
}

func (r *userResolver) Name() string { return r.user.Name }

func (r *userResolver) Email() string { return r.user.Email }

func (r *userResolver) BirthDate() *string { return r.user.BirthDate }

func (r *userResolver) Addresses() []*addressResolver {
	resolvers := make([]*addressResolver, 0, len(r.user.Addresses))
	for i := range r.user.Addresses {
		resolvers = append(resolvers, &addressResolver{
			address: &r.user.Addresses[i],
			owner:   r.user,
		})
	}
	return resolvers
}

type addressResolver struct {
	address *models.Address
	owner   *models.User
}

func (r *addressResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatInt(r.address.ID, 10))
}

func (r *addressResolver) Cep() string { return r.address.Cep }

func (r *addressResolver) Street() string { return r.address.Street }

func (r *addressResolver) StreetNumber() int32 { return r.address.StreetNumber }

func (r *addressResolver) Complement() *string { return r.address.Complement }

func (r *addressResolver) Neighborhood() string { return r.address.Neighborhood }

func (r *addressResolver) City() string { return r.address.City }

func (r *addressResolver) State() string { return r.address.State }

func (r *addressResolver) UserID() int32 { return int32(r.address.UserID) }

func (r *addressResolver) User() *userResolver { return &userResolver{user: r.owner} }

type loginResponseResolver struct {
	result *services.LoginResult
}

func (r *loginResponseResolver) User() *userResolver {
	return &userResolver{user: r.result.User}
}

func (r *loginResponseResolver) Token() string { return r.result.Token }

type usersResponseResolver struct {
	page *services.UserPage
}

func (r *usersResponseResolver) UserList() []*userResolver {
	resolvers := make([]*userResolver, 0, len(r.page.Users))
	for i := range r.page.Users {
		resolvers = append(resolvers, &userResolver{user: &r.page.Users[i]})
	}
	return resolvers
}

func (r *usersResponseResolver) TotalResults() int32 {
	return int32(r.page.Window.Total)
}

func (r *usersResponseResolver) HasUsersBefore() bool { return r.page.Window.HasBefore }

func (r *usersResponseResolver) HasUsersAfter() bool { return r.page.Window.HasAfter }
