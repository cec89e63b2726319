// Package gemini implements port.ModelGateway against Google's Gemini
// generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"guiaflow/internal/config"
	"guiaflow/internal/domain"
	"guiaflow/internal/port"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// harmCategories are the four harm categories the API filters on. All are
// pinned to BLOCK_NONE: a guía scan must never be blocked pre-emptively;
// only the model's own validity judgment decides rejection.
var harmCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

// Gateway calls the Gemini API. One request per Generate call; no retries.
type Gateway struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewGateway creates a Gemini-backed model gateway.
func NewGateway(cfg *config.GatewayConfig) *Gateway {
	return newGateway(cfg, "")
}

// NewGatewayWithEndpoint creates a gateway pointing at a custom API endpoint
// (for testing).
func NewGatewayWithEndpoint(cfg *config.GatewayConfig, endpoint string) *Gateway {
	return newGateway(cfg, endpoint)
}

func newGateway(cfg *config.GatewayConfig, endpoint string) *Gateway {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Gateway{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Generate sends the prompt, preceded by the inline attachment when one is
// present, and returns the model's raw text output.
func (g *Gateway) Generate(ctx context.Context, input port.GenerateInput) (string, error) {
	var parts []map[string]interface{}
	if input.Attachment != nil {
		parts = append(parts, map[string]interface{}{
			"inline_data": map[string]interface{}{
				"mime_type": input.Attachment.MIMEType,
				"data":      base64.StdEncoding.EncodeToString(input.Attachment.Bytes),
			},
		})
	}
	parts = append(parts, map[string]interface{}{"text": input.Prompt})

	safetySettings := make([]map[string]interface{}, 0, len(harmCategories))
	for _, category := range harmCategories {
		safetySettings = append(safetySettings, map[string]interface{}{
			"category":  category,
			"threshold": "BLOCK_NONE",
		})
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": parts,
			},
		},
		"safetySettings": safetySettings,
		"generationConfig": map[string]interface{}{
			"maxOutputTokens": 8192,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", &domain.GatewayError{Err: fmt.Errorf("marshaling request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", &domain.GatewayError{Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &domain.GatewayError{Err: fmt.Errorf("calling gemini API: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.GatewayError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &domain.GatewayError{
			Err: fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody)),
		}
	}

	return extractText(respBody)
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func extractText(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &domain.GatewayError{Err: fmt.Errorf("unmarshaling response: %w", err)}
	}

	if len(resp.Candidates) == 0 {
		return "", &domain.GatewayError{Err: errors.New("empty response from API: no candidates")}
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &domain.GatewayError{Err: errors.New("empty response from API: no parts")}
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
