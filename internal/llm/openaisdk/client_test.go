package openaisdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kitbuilder587/linkedin-agent/internal/llm"
)

type fakeAPI struct {
	resp    openai.ChatCompletionResponse
	err     error
	lastReq openai.ChatCompletionRequest
}

func (f *fakeAPI) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func TestNew_MissingCredential(t *testing.T) {
	client, err := New(Config{BaseURL: "http://unused"}, zap.NewNop())
	require.ErrorIs(t, err, llm.ErrMissingCredential)
	assert.Nil(t, client)
}

func TestClient_RequestShape(t *testing.T) {
	api := &fakeAPI{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "first"}},
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "second"}},
		},
	}}
	client := newWithAPI(api, Config{}, zap.NewNop())

	got, err := client.CompleteWithSystem(context.Background(), "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	assert.Equal(t, llm.DefaultModel, api.lastReq.Model)
	assert.InDelta(t, llm.DefaultTemperature, api.lastReq.Temperature, 1e-6)
	require.Len(t, api.lastReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, api.lastReq.Messages[0].Role)
	assert.Equal(t, "system text", api.lastReq.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, api.lastReq.Messages[1].Role)
	assert.Equal(t, "user text", api.lastReq.Messages[1].Content)
}

func TestClient_EmptyChoices(t *testing.T) {
	client := newWithAPI(&fakeAPI{}, Config{}, zap.NewNop())

	_, err := client.CompleteWithSystem(context.Background(), "s", "p")
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

func TestClient_TransportError(t *testing.T) {
	client := newWithAPI(&fakeAPI{err: errors.New("dial tcp: connection refused")}, Config{}, zap.NewNop())

	_, err := client.CompleteWithSystem(context.Background(), "s", "p")
	assert.ErrorIs(t, err, llm.ErrRequestFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClient_AgainstServer(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       interface{}
		want       string
		wantErr    error
	}{
		{
			name:       "success",
			statusCode: http.StatusOK,
			body: map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"role": "assistant", "content": "Para one.\n\nPara two."}},
				},
			},
			want: "Para one.\n\nPara two.",
		},
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       map[string]interface{}{"error": map[string]string{"message": "Bad credentials", "type": "invalid_request_error"}},
			wantErr:    llm.ErrAuthFailed,
		},
		{
			name:       "rate limited",
			statusCode: http.StatusTooManyRequests,
			body:       map[string]interface{}{"error": map[string]string{"message": "Too many requests", "type": "rate_limit"}},
			wantErr:    llm.ErrRateLimit,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			body:       map[string]interface{}{"error": map[string]string{"message": "internal", "type": "server_error"}},
			wantErr:    llm.ErrRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
				assert.Equal(t, "/chat/completions", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			client, err := New(Config{
				APIKey:  "test-key",
				BaseURL: server.URL,
				Timeout: 5 * time.Second,
			}, zap.NewNop())
			require.NoError(t, err)

			got, err := client.CompleteWithSystem(context.Background(), "system", "prompt")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
