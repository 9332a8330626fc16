package main

import (
	"context"
	"net/http"

	"ec-pharmacy-api/internal/bootstrap"
	"ec-pharmacy-api/internal/config"
	"ec-pharmacy-api/internal/handler"
	"ec-pharmacy-api/internal/linebot"
	"ec-pharmacy-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	config.SetupLogger(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	if err := cfg.RequireBotCredentials(); err != nil {
		log.Fatal().Err(err).Msg("cannot start bot")
	}

	snap, err := bootstrap.LoadSnapshot(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load snapshot")
	}

	bot, err := messaging_api.NewMessagingApiAPI(cfg.LineChannelAccessToken)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create messaging api client")
	}

	// Initialize layers
	searchService, err := service.NewSearchService(snap, cfg.SearchCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create search service")
	}
	limiter, err := linebot.NewSourceLimiter(cfg.BotRatePerMinute, cfg.BotRateBurst)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create rate limiter")
	}

	responder := linebot.NewResponder(searchService, snap.Meta(), cfg.BotMaxResults)
	webhookHandler := linebot.NewWebhookHandler(cfg.LineChannelSecret, responder, bot, limiter)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.AccessLog())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.POST("/callback", webhookHandler.Callback)

	log.Info().Str("address", cfg.BotServerAddress).Msg("bot listening")
	if err := r.Run(cfg.BotServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
