package main

import (
	"context"

	_ "ec-pharmacy-api/docs"
	"ec-pharmacy-api/internal/bootstrap"
	"ec-pharmacy-api/internal/config"
	"ec-pharmacy-api/internal/handler"
	"ec-pharmacy-api/internal/service"
	"ec-pharmacy-api/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

//	@title			Emergency Contraception Pharmacy Search API
//	@version		1.0
//	@description	Search the MHLW list of pharmacies that sell emergency contraception.
//	@BasePath		/
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	config.SetupLogger(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	snap, err := bootstrap.LoadSnapshot(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load snapshot")
	}

	// Initialize layers
	searchService, err := service.NewSearchService(snap, cfg.SearchCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create search service")
	}
	pharmacyService := service.NewPharmacyService(snap)

	dataHandler, err := handler.NewDataHandler(snap)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot encode snapshot")
	}

	r, err := handler.NewRouter(handler.Handlers{
		Search:   handler.NewSearchHandler(searchService, cfg.PageSize, cfg.PreviewSize),
		Pharmacy: handler.NewPharmacyHandler(pharmacyService),
		Data:     dataHandler,
		Static:   web.Static(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create router")
	}

	log.Info().Str("address", cfg.ServerAddress).Msg("api listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
