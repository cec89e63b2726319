package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guiaflow/internal/config"
	"guiaflow/internal/domain"
	"guiaflow/internal/gateway/gemini"
	"guiaflow/internal/port"
)

func newTestGateway(serverURL string) *gemini.Gateway {
	cfg := &config.GatewayConfig{
		APIKey:      "test-gemini-key",
		Model:       "gemini-2.5-flash",
		TimeoutSecs: 30,
	}
	return gemini.NewGatewayWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestGateway_Generate_TextPath(t *testing.T) {
	llmJSON := `{"date":"2024-03-01","ruc":"20123456789"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		contents := reqBody["contents"].([]interface{})
		require.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		// Text path: a single text part, no inline_data.
		parts := msg["parts"].([]interface{})
		require.Len(t, parts, 1)
		textPart := parts[0].(map[string]interface{})
		assert.Contains(t, textPart["text"], "guías de remisión")

		// Safety filtering disabled across all four harm categories.
		settings := reqBody["safetySettings"].([]interface{})
		require.Len(t, settings, 4)
		categories := make(map[string]bool)
		for _, s := range settings {
			setting := s.(map[string]interface{})
			assert.Equal(t, "BLOCK_NONE", setting["threshold"])
			categories[setting["category"].(string)] = true
		}
		assert.True(t, categories["HARM_CATEGORY_HARASSMENT"])
		assert.True(t, categories["HARM_CATEGORY_HATE_SPEECH"])
		assert.True(t, categories["HARM_CATEGORY_SEXUALLY_EXPLICIT"])
		assert.True(t, categories["HARM_CATEGORY_DANGEROUS_CONTENT"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(llmJSON))
	}))
	defer server.Close()

	g := newTestGateway(server.URL)
	out, err := g.Generate(context.Background(), port.GenerateInput{
		Prompt: "Eres un asistente experto en logística de Perú que extrae datos de guías de remisión.",
	})

	require.NoError(t, err)
	assert.Equal(t, llmJSON, out)
}

func TestGateway_Generate_ImagePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		contents := reqBody["contents"].([]interface{})
		parts := contents[0].(map[string]interface{})["parts"].([]interface{})
		require.Len(t, parts, 2)

		// First part: the inline image.
		inlineData := parts[0].(map[string]interface{})["inline_data"].(map[string]interface{})
		assert.Equal(t, "image/jpeg", inlineData["mime_type"])
		assert.NotEmpty(t, inlineData["data"])

		// Second part: the prompt.
		assert.NotEmpty(t, parts[1].(map[string]interface{})["text"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`{"error":"no es una guía"}`))
	}))
	defer server.Close()

	g := newTestGateway(server.URL)
	out, err := g.Generate(context.Background(), port.GenerateInput{
		Prompt:     "Analiza la imagen adjunta.",
		Attachment: &domain.Attachment{Bytes: []byte{0xFF, 0xD8, 0xFF}, MIMEType: "image/jpeg"},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"error":"no es una guía"}`, out)
}

func TestGateway_Generate_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	g := newTestGateway(server.URL)
	_, err := g.Generate(context.Background(), port.GenerateInput{Prompt: "hola"})

	var gatewayErr *domain.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Contains(t, gatewayErr.Error(), "status 429")
	assert.Contains(t, gatewayErr.Error(), "quota exceeded")
}

func TestGateway_Generate_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	g := newTestGateway(server.URL)
	_, err := g.Generate(context.Background(), port.GenerateInput{Prompt: "hola"})

	var gatewayErr *domain.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Contains(t, gatewayErr.Error(), "no candidates")
}

func TestGateway_Generate_UnreachableProvider(t *testing.T) {
	g := newTestGateway("http://127.0.0.1:1")
	_, err := g.Generate(context.Background(), port.GenerateInput{Prompt: "hola"})

	var gatewayErr *domain.GatewayError
	assert.ErrorAs(t, err, &gatewayErr)
}
