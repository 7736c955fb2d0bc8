package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	json "github.com/goccy/go-json"
)

const deepgramBaseURL = "https://api.deepgram.com"

type DeepgramClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewDeepgramClient(apiKey string) *DeepgramClient {
	return &DeepgramClient{
		apiKey:  apiKey,
		baseURL: deepgramBaseURL,
		client:  &http.Client{},
	}
}

func (c *DeepgramClient) Transcribe(ctx context.Context, filePath string) (Transcription, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Transcription{}, fmt.Errorf("read audio file: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/listen?model=nova-2&smart_format=true&detect_language=true",
		bytes.NewReader(data),
	)
	if err != nil {
		return Transcription{}, err
	}

	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "audio/ogg")

	resp, err := c.client.Do(req)
	if err != nil {
		return Transcription{}, fmt.Errorf("deepgram request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return Transcription{}, fmt.Errorf("deepgram error: %s", body)
	}

	var parsed struct {
		Results struct {
			Channels []struct {
				DetectedLanguage string `json:"detected_language"`
				Alternatives     []struct {
					Transcript string `json:"transcript"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return Transcription{}, fmt.Errorf("decode deepgram: %w", err)
	}

	if len(parsed.Results.Channels) == 0 ||
		len(parsed.Results.Channels[0].Alternatives) == 0 {
		return Transcription{}, fmt.Errorf("empty transcript")
	}

	ch := parsed.Results.Channels[0]
	return Transcription{
		Text:         ch.Alternatives[0].Transcript,
		LanguageHint: ch.DetectedLanguage,
	}, nil
}
