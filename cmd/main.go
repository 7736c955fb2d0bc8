package main

import (
	"log"
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"nomadai/internal/ai"
	"nomadai/internal/config"
	"nomadai/internal/delivery"
	"nomadai/internal/notificator"
	"nomadai/internal/persona"
	"nomadai/internal/pipeline"
	"nomadai/internal/places"
	"nomadai/internal/speech"
	"nomadai/internal/telegram"
	"nomadai/internal/tips"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// LOCAL KNOWLEDGE
	// =========================================================================

	tipsRepo, err := tips.NewFileRepo(cfg.TipsFile)
	if err != nil {
		log.Fatalf("failed to load tips table: %v", err)
	}
	tipsService := tips.NewService(tipsRepo)

	// =========================================================================
	// CLIENTS (STT / LLM / TTS / PLACES)
	// =========================================================================

	openAIClient := ai.NewOpenAIClient(cfg.OpenAIKey)

	var sttClient speech.STTClient
	switch cfg.STTProvider {
	case config.STTDeepgram:
		sttClient = speech.NewDeepgramClient(cfg.DeepgramKey)
	default:
		sttClient = speech.NewWhisperClient(cfg.OpenAIKey)
	}

	ttsClient := speech.NewElevenLabsClient(cfg.ElevenLabsKey, cfg.ElevenLabsVoiceID)
	speechService := speech.NewService(sttClient, ttsClient)

	placesClient := places.NewGoogleClient(cfg.GoogleMapsKey)

	// =========================================================================
	// SERVICES
	// =========================================================================

	personaService := persona.NewService(openAIClient)

	pipelineService := pipeline.NewService(
		speechService, // STT
		speechService, // TTS
		personaService,
		tipsService,
		placesClient,
		openAIClient,
	)

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra := notificator.NewInfra(nil, cfg.AdminChatID)
	errService := notificator.NewService(errInfra)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	botApp, err := telegram.NewBotApp(cfg.TelegramToken, pipelineService, errService)
	if err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	errInfra.SetBot(botApp.Bot())

	if cfg.TelegramMode == config.ModePolling {
		go botApp.RunPolling()
	}

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	webhookHandler := delivery.NewWebhookHandler(botApp, zl)
	tipsHandler := delivery.NewTipsHandler(tipsRepo, tipsService, zl)

	delivery.RegisterRoutes(r, webhookHandler, tipsHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "nomadai",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
