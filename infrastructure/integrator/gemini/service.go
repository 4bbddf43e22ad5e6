package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/gemini/geminiclient"
	geminidomain "github.com/vfg2006/insights-assistant-api/infrastructure/integrator/gemini/domain"
	"github.com/vfg2006/insights-assistant-api/internal/config"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

// Parâmetros de decodificação fixos
const (
	Temperature = 0.7
	TopP        = 0.8

	InsightsMaxOutputTokens = 2048
	ChatMaxOutputTokens     = 1024
)

const (
	DriverREST = "rest"
	DriverSDK  = "sdk"
)

type GenerationRequest struct {
	Prompt          string
	MaxOutputTokens int32
}

// Generator faz uma única tentativa de geração, sem retry
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// New escolhe o driver de geração configurado
func New(cfg *config.Config) Generator {
	if strings.EqualFold(cfg.Generation.Driver, DriverSDK) {
		log.L.Info("Usando driver SDK para geração de texto")
		return NewSDKGenerator(cfg)
	}
	return NewRESTGenerator(geminiclient.NewClient(cfg))
}

type RESTGenerator struct {
	Client geminiclient.Client
}

func NewRESTGenerator(client geminiclient.Client) *RESTGenerator {
	return &RESTGenerator{Client: client}
}

func (g *RESTGenerator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	body := geminidomain.NewTextRequest(req.Prompt, geminidomain.GenerationConfig{
		Temperature:     Temperature,
		TopP:            TopP,
		MaxOutputTokens: req.MaxOutputTokens,
	})

	resp, err := g.Client.GenerateContent(ctx, body)
	if err != nil {
		genErr := &GenerationError{Err: ErrRequestFailed, Cause: err}

		var statusErr *geminiclient.StatusError
		if errors.As(err, &statusErr) {
			genErr.StatusCode = statusErr.StatusCode
		}
		return "", genErr
	}

	text, ok := resp.FirstText()
	if !ok {
		return "", &GenerationError{Err: ErrEmptyResponse}
	}

	return text, nil
}
