package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"gopkg.in/yaml.v3"
)

// Seed is the YAML document read from TODO_SEED_FILE.
type Seed struct {
	Users []SeedUser `yaml:"users"`
}

type SeedUser struct {
	Email       string   `yaml:"email"`
	Password    string   `yaml:"password"`
	FirstName   string   `yaml:"first_name"`
	LastName    string   `yaml:"last_name"`
	Gender      string   `yaml:"gender"`
	Age         int      `yaml:"age"`
	PhoneNumber string   `yaml:"phone_number"`
	Roles       []string `yaml:"roles"`
}

// LoadSeed parses the seed file at path.
func LoadSeed(path string) (Seed, error) {
	var seed Seed

	data, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("read seed file: %w", err)
	}
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return seed, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return seed, nil
}

// ApplySeed registers every seed user that does not exist yet and grants the
// listed roles. Running it again changes nothing.
func ApplySeed(ctx context.Context, users *service.UserService, seed Seed, logger *slog.Logger) error {
	for _, su := range seed.Users {
		_, err := users.FindByEmail(ctx, su.Email)
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			if _, err := users.Register(ctx, service.Registration{
				Email:       su.Email,
				Password:    su.Password,
				FirstName:   su.FirstName,
				LastName:    su.LastName,
				Gender:      su.Gender,
				Age:         su.Age,
				PhoneNumber: su.PhoneNumber,
			}); err != nil {
				return fmt.Errorf("seed user %s: %w", su.Email, err)
			}
			logger.Info("seeded user", "email", su.Email)
		case err != nil:
			return fmt.Errorf("seed lookup %s: %w", su.Email, err)
		}

		for _, role := range su.Roles {
			if err := users.AssignRole(ctx, su.Email, role); err != nil {
				return fmt.Errorf("seed role %s for %s: %w", role, su.Email, err)
			}
		}
	}
	return nil
}
