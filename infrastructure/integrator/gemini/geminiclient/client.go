package geminiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	geminidomain "github.com/vfg2006/insights-assistant-api/infrastructure/integrator/gemini/domain"
	"github.com/vfg2006/insights-assistant-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GenerateContent(ctx context.Context, req geminidomain.GenerateContentRequest) (*geminidomain.GenerateContentResponse, error)
}

// StatusError é devolvido quando o endpoint de geração responde com status diferente de 2xx
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geração falhou com status %d: %s", e.StatusCode, e.Body)
}

type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Generation.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Generation.BaseURL,
		model:   cfg.Generation.Model,
		apiKey:  cfg.Generation.APIKey,
	}
}

func (c *GeminiClient) GenerateContent(ctx context.Context, body geminidomain.GenerateContentRequest) (*geminidomain.GenerateContentResponse, error) {
	endpoint, err := url.Parse(fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model))
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	// A chave vai na query string, como exige a API
	query := endpoint.Query()
	query.Set("key", c.apiKey)
	endpoint.RawQuery = query.Encode()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o corpo: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carrega a URL com a chave; não propagar
		return nil, fmt.Errorf("erro ao executar a requisição: %w", unwrapURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var response geminidomain.GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}

func unwrapURLError(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}
