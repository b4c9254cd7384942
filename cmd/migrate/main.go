// Comando de migraciones: aplica el esquema pendiente y termina.
// Uso: migrate (lee DATABASE_URL / DB_* del entorno, igual que el API).
package main

import (
	"github.com/oliveiradev/estoque-api/internal/infrastructure/postgres"
	"github.com/oliveiradev/estoque-api/pkg/config"
	"github.com/oliveiradev/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	log.Info().Str("db", cfg.DB.DBName).Msg("aplicando migraciones")
	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")
}
