// Command seed populates the database with generated users so the paginated
// listing has something to page through.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/userbook/internal/logging"
	"github.com/dmitrijs2005/userbook/internal/server/config"
	"github.com/dmitrijs2005/userbook/internal/server/models"
	"github.com/dmitrijs2005/userbook/internal/server/passwords"
	usersrepo "github.com/dmitrijs2005/userbook/internal/server/repositories/users"
	"github.com/dmitrijs2005/userbook/internal/server/shared/db"
	"github.com/google/uuid"
)

const userCount = 75

var firstNames = []string{
	"Adler", "Bernardete", "Claudia", "Daniel", "Erick", "Felipe", "Gabriel",
	"Heitor", "Italo", "Joao", "Karina", "Larissa", "Marcos", "Natalia",
	"Otavio", "Priscila", "Rafael", "Sabrina", "Thiago", "Vanessa",
}

var lastNames = []string{
	"Alves", "Barros", "Leite", "Junior", "Sousa", "Gabriel", "Felipe",
	"Nunes", "John", "Silva", "Costa", "Dias", "Esteves", "Ferreira",
	"Gomes", "Lima", "Martins", "Oliveira", "Pereira", "Santos",
}

func main() {
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger).With("module", "seed")

	ctx := context.Background()
	cfg := config.LoadConfig()

	gormDB, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "db init error", "error", err.Error())
		os.Exit(1)
	}

	repo := usersrepo.NewGormRepository(gormDB)
	policy := passwords.NewPolicy(cfg.BcryptCost)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for i := 0; i < userCount; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		email := fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), rng.Intn(1000))

		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			logger.Error(ctx, "existence check failed", "error", err.Error())
			os.Exit(1)
		}
		if exists {
			continue
		}

		// Throwaway credential; seeded accounts are not meant to log in.
		hash, err := policy.Hash(uuid.NewString()[:16])
		if err != nil {
			logger.Error(ctx, "hashing failed", "error", err.Error())
			os.Exit(1)
		}

		birthDate := randomBirthDate(rng)
		if _, err := repo.Create(ctx, &models.User{
			Name:      first + " " + last,
			Email:     email,
			Password:  hash,
			BirthDate: &birthDate,
		}); err != nil {
			logger.Error(ctx, "user creation failed", "error", err.Error())
			os.Exit(1)
		}
		created++
	}

	logger.Info(ctx, "seeding finished", "created", created, "requested", userCount)
}

// randomBirthDate formats a date of birth between 18 and 65 years ago as
// dd-mm-yyyy.
func randomBirthDate(rng *rand.Rand) string {
	age := 18 + rng.Intn(48)
	date := time.Now().AddDate(-age, -rng.Intn(12), -rng.Intn(28))
	return date.Format("02-01-2006")
}
