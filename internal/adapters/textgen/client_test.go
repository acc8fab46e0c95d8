package textgen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/healthcare_assistant_app/internal/adapters/textgen"
	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/SscSPs/healthcare_assistant_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Success(t *testing.T) {
	var got textgen.GenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`[{"generated_text":"Rest and hydrate."}]`))
	}))
	defer srv.Close()

	c := textgen.NewClientWithHTTP(srv.Client(), srv.URL, "distilgpt2")
	reply, err := c.Generate(context.Background(), "I feel tired", domain.DefaultGenerationParams)

	require.NoError(t, err)
	assert.Equal(t, "Rest and hydrate.", reply)
	assert.Equal(t, "distilgpt2", got.Model)
	assert.Equal(t, "I feel tired", got.Inputs)
	assert.Equal(t, 200, got.Parameters.MaxLength)
	assert.InDelta(t, 0.7, got.Parameters.Temperature, 1e-9)
}

func TestGenerate_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Model distilgpt2 is currently loading"}`))
	}))
	defer srv.Close()

	_, err := textgen.NewClientWithHTTP(srv.Client(), srv.URL, "").
		Generate(context.Background(), "hi", domain.DefaultGenerationParams)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrGateway)
	assert.Contains(t, err.Error(), "currently loading")
	assert.Contains(t, err.Error(), "503")
}

func TestGenerate_EmptyAndMalformed(t *testing.T) {
	for name, body := range map[string]string{
		"empty list": `[]`,
		"not json":   `<html>`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := textgen.NewClientWithHTTP(srv.Client(), srv.URL, "").
				Generate(context.Background(), "hi", domain.DefaultGenerationParams)
			assert.ErrorIs(t, err, apperrors.ErrGateway)
		})
	}
}

func TestGenerate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := textgen.NewClientWithHTTP(http.DefaultClient, url, "").
		Generate(context.Background(), "hi", domain.DefaultGenerationParams)
	assert.ErrorIs(t, err, apperrors.ErrGateway)
}

func TestNewClient_BearerSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"generated_text":"ok"}]`))
	}))
	defer srv.Close()

	c, err := textgen.NewClient(context.Background(), &config.Config{
		AssistantURL:      srv.URL,
		AssistantAuthMode: config.AssistantAuthBearer,
		AssistantAPIToken: "hf_test",
	})
	require.NoError(t, err)

	reply, err := c.Generate(context.Background(), "hi", domain.DefaultGenerationParams)
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}

func TestNewClient_BearerRequiresToken(t *testing.T) {
	_, err := textgen.NewClient(context.Background(), &config.Config{AssistantAuthMode: config.AssistantAuthBearer})
	assert.Error(t, err)
}
