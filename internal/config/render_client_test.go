package config

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClient_ListSecrets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-123/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer render-key", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"secretFile":{"name":"generation_api_key","content":"abc"}},{"secretFile":{"name":"other","content":"x"}}]`))
	}))
	defer server.Close()

	client := &RenderClient{APIKey: "render-key", BaseURL: server.URL, HTTPClient: server.Client()}

	secrets, err := client.ListSecrets("srv-123")
	require.NoError(t, err)
	assert.Equal(t, "abc", secrets[GenerationAPIKeySecret])
	assert.Len(t, secrets, 2)
}

func TestRenderClient_ListSecretsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("unauthorized"))
	}))
	defer server.Close()

	client := &RenderClient{APIKey: "bad", BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.ListSecrets("srv-123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}
