package app

import (
	"fmt"
	"log"

	intconfig "dashboard/internal/config"
	"dashboard/internal/domain"
	"dashboard/internal/repositories"
	"dashboard/internal/services"
)

// App is everything the HTTP server and the CLI need.
type App struct {
	Registry services.Registry
	Auth     services.AuthService
}

// Build wires sources from env. With DATA_SOURCE=mysql the invoice and expense ledgers
// are read from MySQL; every other collection comes from the embedded seed.
func Build(env intconfig.Env) (App, error) {
	seed, err := repositories.LoadSeed()
	if err != nil {
		return App{}, fmt.Errorf("load seed: %w", err)
	}
	sources := repositories.SeedSources(seed)

	if env.DataSource == intconfig.SourceMySQL {
		db, err := intconfig.ConnectDB(env.DBDSN)
		if err != nil {
			return App{}, err
		}
		sources.Invoices = repositories.InvoiceRepository{DB: db}
		sources.Expenses = repositories.ExpenseRepository{DB: db}
		log.Printf("[APP] invoices and expenses served from mysql")
	}

	admin, err := services.NewUser("1", "Administrator", env.AdminUsername, env.AdminPassword, domain.RoleAdmin)
	if err != nil {
		return App{}, err
	}

	return App{
		Registry: services.Registry{Sources: sources},
		Auth: services.AuthService{
			Users:  services.NewMemoryUserStore(admin),
			Secret: []byte(env.JWTSecret),
			TTL:    env.JWTTTL,
		},
	}, nil
}
