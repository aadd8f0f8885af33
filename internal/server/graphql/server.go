package graphql

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userbook/internal/logging"
	"github.com/dmitrijs2005/userbook/internal/server/auth"
	"github.com/dmitrijs2005/userbook/internal/server/services"
	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Server serves the GraphQL endpoint over HTTP.
type Server struct {
	address string
	logger  logging.Logger
	schema  *graphql.Schema
}

func NewServer(address string, logger logging.Logger, svc *services.UserService) *Server {
	schema := graphql.MustParseSchema(Schema, NewResolver(svc))
	return &Server{
		address: address,
		logger:  logger.With("module", "graphql_server"),
		schema:  schema,
	}
}

// withRequestContext tags each request with an id and moves the raw bearer
// token from the Authorization header into the context, where the auth gate
// picks it up. The token is carried as-is, with no scheme prefix.
func (s *Server) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if token := r.Header.Get("Authorization"); token != "" {
			ctx = auth.WithToken(ctx, token)
		}

		requestID := uuid.NewString()
		s.logger.Info(ctx, "request", "request_id", requestID, "remote_addr", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Handler returns the full middleware-wrapped endpoint handler.
func (s *Server) Handler() http.Handler {
	return s.withRequestContext(&relay.Handler{Schema: s.schema})
}

// Run serves the endpoint until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/", s.Handler())

	srv := &http.Server{
		Addr:    s.address,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping GraphQL server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting GraphQL server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
