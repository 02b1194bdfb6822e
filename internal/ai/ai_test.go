package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgen/internal/config"
)

func TestResponseTextJoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{
				genai.Text(`{"trip_summary":`),
				genai.Blob{MIMEType: "image/png"},
				genai.Text(`"Paris trip"}`),
			}},
		}},
	}

	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"trip_summary":"Paris trip"}`, text)
}

func TestResponseTextNoCandidates(t *testing.T) {
	_, err := responseText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = responseText(nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestResponseTextEmptyPartsIsNotAnError(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	}
	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "  "})
	assert.Error(t, err)
}

func TestOpenAIProviderGenerateText(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"tips\":[]}"}}]}`))
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", Endpoint: srv.URL})
	require.NoError(t, err)

	text, err := p.GenerateText(context.Background(), "plan a trip")
	require.NoError(t, err)
	assert.Equal(t, `{"tips":[]}`, text)
	assert.Equal(t, DefaultOpenAIModel, got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "plan a trip", got.Messages[0].Content)
}

func TestOpenAIProviderAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-bad", Endpoint: srv.URL})
	require.NoError(t, err)

	_, err = p.GenerateText(context.Background(), "plan a trip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestOpenAIProviderNon2xxWithoutJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", Endpoint: srv.URL})
	require.NoError(t, err)

	_, err = p.GenerateText(context.Background(), "plan a trip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestNewTextGeneratorSelectsOpenAI(t *testing.T) {
	gen, closeFn, err := NewTextGenerator(context.Background(), config.AIConfig{Provider: config.ProviderOpenAI, OpenAIKey: "sk-test"})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &OpenAIProvider{}, gen)
}

func TestNewTextGeneratorMissingKey(t *testing.T) {
	_, _, err := NewTextGenerator(context.Background(), config.AIConfig{Provider: config.ProviderOpenAI})
	assert.Error(t, err)
}
