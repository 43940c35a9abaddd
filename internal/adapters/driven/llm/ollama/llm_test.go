package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driven"
)

func TestGenerate(t *testing.T) {
	var gotReq generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		require.NoError(t, json.NewEncoder(w).Encode(generateResponse{Response: "the answer", Done: true}))
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL, Model: "test-model"})
	defer svc.Close()

	text, err := svc.Generate(context.Background(), "the prompt", driven.GenerateOptions{Temperature: 0.2})
	require.NoError(t, err)
	assert.Equal(t, "the answer", text)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, "the prompt", gotReq.Prompt)
	assert.False(t, gotReq.Stream)
	require.NotNil(t, gotReq.Options)
	assert.InDelta(t, 0.2, gotReq.Options.Temperature, 1e-9)
}

func TestGenerateStream(t *testing.T) {
	fragments := []string{"The ", "conclusion ", "is clear."}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.True(t, req.Stream)

		enc := json.NewEncoder(w)
		for i, f := range fragments {
			require.NoError(t, enc.Encode(generateResponse{Response: f, Done: i == len(fragments)-1}))
		}
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})

	var received []string
	text, err := svc.GenerateStream(context.Background(), "q", driven.GenerateOptions{}, func(f string) {
		received = append(received, f)
	})
	require.NoError(t, err)
	assert.Equal(t, "The conclusion is clear.", text)
	assert.Equal(t, fragments, received)
}

func TestGenerateStream_NilCallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, `{"response":"ok","done":true}`)
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})
	text, err := svc.GenerateStream(context.Background(), "q", driven.GenerateOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})
	_, err := svc.Generate(context.Background(), "q", driven.GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInferenceFailed)
}

func TestGenerate_Unreachable(t *testing.T) {
	svc := NewLLMService(LLMConfig{BaseURL: "http://127.0.0.1:1"})
	_, err := svc.Generate(context.Background(), "q", driven.GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInferenceFailed)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})
	assert.NoError(t, svc.Ping(context.Background()))
}

func TestDefaults(t *testing.T) {
	svc := NewLLMService(LLMConfig{})
	assert.Equal(t, DefaultLLMModel, svc.ModelName())
	assert.Equal(t, DefaultBaseURL, svc.baseURL)
}
