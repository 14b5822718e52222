package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tramibot/config"
)

func TestHuggingFace_Complete(t *testing.T) {
	var got hfRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/org/model", r.URL.Path)
		assert.Equal(t, "Bearer hf-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`[{"generated_text":"Affects TIE renewals"}]`))
	}))
	defer srv.Close()

	b := NewHuggingFace(srv.URL+"/models", "org/model", "hf-token", GenerationOptions{MaxTokens: 120}, nil)
	text, err := b.Complete(context.Background(), "prompt text")
	require.NoError(t, err)
	assert.Equal(t, "Affects TIE renewals", text)
	assert.Equal(t, "prompt text", got.Inputs)
	assert.Equal(t, 120, got.Parameters.MaxNewTokens)
	assert.InDelta(t, DefaultTemperature, got.Parameters.Temperature, 1e-9)
}

func TestHuggingFace_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   ErrorKind
	}{
		{name: "non 200", status: http.StatusServiceUnavailable, body: `{"error":"loading"}`, kind: KindServiceFailed},
		{name: "object instead of list", status: http.StatusOK, body: `{"error":"x"}`, kind: KindMalformedResponse},
		{name: "missing field", status: http.StatusOK, body: `[{"text":"x"}]`, kind: KindMalformedResponse},
		{name: "empty list", status: http.StatusOK, body: `[]`, kind: KindMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			b := NewHuggingFace(srv.URL, "m", "t", GenerationOptions{}, nil)
			_, err := b.Complete(context.Background(), "p")
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestHuggingFace_EmptyTextFallsBackThroughChain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"generated_text":""}]`))
	}))
	defer srv.Close()

	s := New([]Backend{NewHuggingFace(srv.URL, "m", "t", GenerationOptions{}, nil)})
	a := s.Assess(context.Background(), sampleEntry, "")
	assert.Equal(t, FallbackText, a.AnalysisText)
	assert.ErrorIs(t, a.Err, ErrMalformedResponse)
}

func TestSummarize_HuggingFace(t *testing.T) {
	closed := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	unreachable := closed.URL
	closed.Close()

	tests := []struct {
		name     string
		body     string
		url      string
		want     string
		wantErr  bool
		wantKind ErrorKind
	}{
		{name: "success", body: `[{"generated_text":" Affects NIE holders "}]`, want: "Affects NIE holders"},
		{name: "unreachable", url: unreachable, wantErr: true, wantKind: KindServiceFailed},
		{name: "empty object", body: `{}`, wantErr: true, wantKind: KindMalformedResponse},
		{name: "blank text", body: `[{"generated_text":"  "}]`, wantErr: true, wantKind: KindMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPrompt string
			url := tt.url
			if url == "" {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					var req hfRequest
					require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
					gotPrompt = req.Inputs
					_, _ = w.Write([]byte(tt.body))
				}))
				defer srv.Close()
				url = srv.URL
			}

			s := New([]Backend{NewHuggingFace(url, "m", "t", GenerationOptions{}, nil)})
			text, err := s.Summarize(context.Background(), "Orden sobre renovación de la TIE", "estudiante")

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, text)
				assert.Contains(t, gotPrompt, "Orden sobre renovación de la TIE")
				assert.Contains(t, gotPrompt, "estudiante")
				return
			}
			require.Error(t, err)
			assert.Empty(t, text)
			assert.Equal(t, tt.wantKind, KindOf(err))

			a := s.Assess(context.Background(), sampleEntry, "")
			assert.Equal(t, FallbackText, a.AnalysisText)
			assert.Equal(t, tt.wantKind, KindOf(a.Err))
			assert.False(t, a.Urgent)
		})
	}
}

func TestOpenRouter_Complete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer or-key", r.Header.Get("Authorization"))
		assert.Equal(t, "tramibot", r.Header.Get("X-Title"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"gen-1","object":"chat.completion","created":1,"model":"m",` +
			`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Student visas affected"}}]}`))
	}))
	defer srv.Close()

	b := NewOpenRouter(srv.URL+"/api/v1", "meta/model:free", "or-key", GenerationOptions{MaxTokens: 50, Temperature: 0.2}, nil)
	text, err := b.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Student visas affected", text)
	assert.Equal(t, "meta/model:free", body["model"])
	assert.EqualValues(t, 50, body["max_tokens"])
	assert.InDelta(t, 0.2, body["temperature"], 1e-9)
}

func TestOpenRouter_Errors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		}))
		defer srv.Close()

		_, err := NewOpenRouter(srv.URL, "m", "k", GenerationOptions{}, nil).Complete(context.Background(), "p")
		assert.Equal(t, KindServiceFailed, KindOf(err))
	})

	t.Run("no choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"gen-1","object":"chat.completion","created":1,"model":"m","choices":[]}`))
		}))
		defer srv.Close()

		_, err := NewOpenRouter(srv.URL, "m", "k", GenerationOptions{}, nil).Complete(context.Background(), "p")
		assert.Equal(t, KindMalformedResponse, KindOf(err))
	})
}

func TestFromConfig_SkipsBackendsWithoutCredentials(t *testing.T) {
	cfg := config.Defaults().Summarizer

	s, err := FromConfig(context.Background(), cfg, config.Secrets{
		OpenRouterAPIKey: "or-key",
		AnthropicAPIKey:  "sk-ant",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{BackendOpenRouter, BackendAnthropic}, s.Backends())

	s, err = FromConfig(context.Background(), cfg, config.Secrets{})
	require.NoError(t, err)
	assert.Empty(t, s.Backends())
	assert.Equal(t, FallbackText, s.Assess(context.Background(), sampleEntry, "").AnalysisText)
}

func TestFromConfig_Order(t *testing.T) {
	cfg := config.Defaults().Summarizer
	cfg.Backends = []string{"Anthropic", "huggingface", "anthropic"}

	s, err := FromConfig(context.Background(), cfg, config.Secrets{HuggingFaceToken: "hf", AnthropicAPIKey: "sk"})
	require.NoError(t, err)
	assert.Equal(t, []string{BackendAnthropic, BackendHuggingFace}, s.Backends())
}

func TestFromConfig_UnknownBackend(t *testing.T) {
	cfg := config.Defaults().Summarizer
	cfg.Backends = []string{"huggingface", "cohere"}

	_, err := FromConfig(context.Background(), cfg, config.Secrets{HuggingFaceToken: "hf"})
	assert.ErrorContains(t, err, "unsupported summarizer backend: cohere")
}
