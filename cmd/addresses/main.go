package main

import (
	"log/slog"

	"addresses/config"
	"addresses/internal/domain/service"
	"addresses/internal/infra/geocode"
	logs "addresses/internal/infra/log"
	"addresses/internal/infra/persistence/model"
	"addresses/internal/infra/persistence/postgres"
	"addresses/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(
			migrate,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
		newGeocoder,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		postgres.NewAddressRepository,
		postgres.NewTransactionManager,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAddressService,
	)
}

// newGeocoder creates the geocoding client when the enrichment is enabled.
// A nil geocoder disables the save-time hook entirely.
func newGeocoder(cfg *config.Config) service.Geocoder {
	if cfg.Geocoding == nil || !cfg.Geocoding.Enabled {
		return nil
	}

	return geocode.NewGoogleGeocoder(cfg.Geocoding)
}

// migrate brings the addresses table up to the current schema.
func migrate(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(&model.AddressModel{}); err != nil {
		return err
	}

	logger.Info("addresses schema ready")

	return nil
}
