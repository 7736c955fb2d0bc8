package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	STTWhisper  = "whisper"
	STTDeepgram = "deepgram"

	ModePolling = "polling"
	ModeWebhook = "webhook"
)

type Config struct {
	Port string

	TelegramToken string
	TelegramMode  string

	OpenAIKey     string
	DeepgramKey   string
	ElevenLabsKey string
	GoogleMapsKey string

	STTProvider       string
	ElevenLabsVoiceID string

	TipsFile    string
	AdminChatID int64
}

// Load читает конфигурацию из окружения. Отсутствие обязательного
// ключа — фатальная ошибка старта, бот не должен подниматься без него.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getenv("PORT", "8080"),
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramMode:      getenv("TELEGRAM_MODE", ModePolling),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		DeepgramKey:       os.Getenv("DEEPGRAM_API_KEY"),
		ElevenLabsKey:     os.Getenv("ELEVENLABS_API_KEY"),
		GoogleMapsKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
		STTProvider:       getenv("STT_PROVIDER", STTWhisper),
		ElevenLabsVoiceID: getenv("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		TipsFile:          getenv("TIPS_FILE", "delhi_secrets.json"),
	}

	if v := os.Getenv("ADMIN_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_CHAT_ID must be an integer: %w", err)
		}
		cfg.AdminChatID = id
	}

	var missing []string
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if cfg.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if cfg.ElevenLabsKey == "" {
		missing = append(missing, "ELEVENLABS_API_KEY")
	}
	if cfg.GoogleMapsKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}
	if cfg.STTProvider == STTDeepgram && cfg.DeepgramKey == "" {
		missing = append(missing, "DEEPGRAM_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required env: %s", strings.Join(missing, ", "))
	}

	if cfg.STTProvider != STTWhisper && cfg.STTProvider != STTDeepgram {
		return nil, fmt.Errorf("unknown STT_PROVIDER %q", cfg.STTProvider)
	}
	if cfg.TelegramMode != ModePolling && cfg.TelegramMode != ModeWebhook {
		return nil, fmt.Errorf("unknown TELEGRAM_MODE %q", cfg.TelegramMode)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
