// create_user crea la cuenta de acceso al tablero. No existe registro público.
//
// Uso: go run ./cmd/create_user -email duena@tienda.mx -password '...' [-name 'Dueña'] [-init-schema]
// Con -init-schema aplica antes el DDL de las tablas (idempotente).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/MiNegocio-api/internal/application/auth"
	"github.com/jhoicas/MiNegocio-api/internal/infrastructure/memory"
	"github.com/jhoicas/MiNegocio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/MiNegocio-api/pkg/config"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email de la cuenta")
	password := flag.String("password", "", "password (mínimo 8 caracteres)")
	name := flag.String("name", "", "nombre para mostrar")
	initSchema := flag.Bool("init-schema", false, "crear tablas antes de insertar la cuenta")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *initSchema {
		if _, err := pool.Exec(ctx, postgres.Schema); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		log.Info().Msg("esquema aplicado")
	}

	// Las sesiones no se usan aquí; CreateUser solo necesita el repositorio de usuarios.
	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), memory.NewSessionStore(), auth.JWTConfig{
		Secret: cfg.JWT.Secret, TTL: cfg.JWT.TTL(), Issuer: cfg.JWT.Issuer,
	}, log)
	user, err := uc.CreateUser(ctx, *email, *password, *name)
	if err != nil {
		log.Fatal().Err(err).Str("email", *email).Msg("crear cuenta")
	}
	fmt.Printf("Cuenta creada: %s (%s)\n", user.Email, user.ID)
}
