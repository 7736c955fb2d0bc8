package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ELEVENLABS_API_KEY", "el-test")
	t.Setenv("GOOGLE_MAPS_API_KEY", "maps-test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.STTProvider != STTWhisper {
		t.Fatalf("stt provider = %q", cfg.STTProvider)
	}
	if cfg.TelegramMode != ModePolling {
		t.Fatalf("mode = %q", cfg.TelegramMode)
	}
	if cfg.TipsFile != "delhi_secrets.json" {
		t.Fatalf("tips file = %q", cfg.TipsFile)
	}
}

func TestLoad_MissingCredentialIsFatal(t *testing.T) {
	setRequired(t)
	t.Setenv("GOOGLE_MAPS_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error on missing GOOGLE_MAPS_API_KEY")
	}
	if !strings.Contains(err.Error(), "GOOGLE_MAPS_API_KEY") {
		t.Fatalf("error does not name the missing var: %v", err)
	}
}

func TestLoad_DeepgramKeyRequiredOnlyForDeepgram(t *testing.T) {
	setRequired(t)
	t.Setenv("STT_PROVIDER", STTDeepgram)

	if _, err := Load(); err == nil {
		t.Fatal("expected error: deepgram provider without DEEPGRAM_API_KEY")
	}

	t.Setenv("DEEPGRAM_API_KEY", "dg-test")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.STTProvider != STTDeepgram {
		t.Fatalf("stt provider = %q", cfg.STTProvider)
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	setRequired(t)
	t.Setenv("STT_PROVIDER", "kazoo")

	if _, err := Load(); err == nil {
		t.Fatal("expected error on unknown STT_PROVIDER")
	}
}

func TestLoad_BadAdminChatID(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_CHAT_ID", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error on non-numeric ADMIN_CHAT_ID")
	}
}
