package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nba-voice-stats/internal/infra"
)

const (
	DefaultTTSModel = "tts-1"
	DefaultTTSVoice = "alloy"
)

// TTSClient synthesises speech through the audio/speech endpoint and returns
// WAV bytes.
type TTSClient struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	model      string
	voice      string
}

func NewTTSClient(apiKey, model, voice string) *TTSClient {
	return NewTTSClientWithURL(apiKey, model, voice, DefaultBaseURL)
}

func NewTTSClientWithURL(apiKey, model, voice, baseURL string) *TTSClient {
	if model == "" {
		model = DefaultTTSModel
	}
	if voice == "" {
		voice = DefaultTTSVoice
	}
	return &TTSClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		model:      model,
		voice:      voice,
	}
}

type speechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

func (c *TTSClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(speechRequest{
		Model:          c.model,
		Input:          text,
		Voice:          c.voice,
		ResponseFormat: "wav",
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	var audio []byte
	retryErr := infra.WithRetry(ctx, infra.DefaultRetryConfig(), func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/speech", bytes.NewReader(payload))
		if err != nil {
			return infra.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("sending request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			apiErr := fmt.Errorf("speech API error %d: %s", resp.StatusCode, string(respBody))
			if infra.IsRetryableHTTPStatus(resp.StatusCode) {
				return apiErr
			}
			return infra.Permanent(apiErr)
		}

		audio, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading audio: %w", err)
		}
		return nil
	})
	if retryErr != nil {
		return nil, retryErr
	}

	return audio, nil
}
