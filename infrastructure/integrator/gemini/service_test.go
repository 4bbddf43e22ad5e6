package gemini_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/gemini"
	geminidomain "github.com/vfg2006/insights-assistant-api/infrastructure/integrator/gemini/domain"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/insights-assistant-api/infrastructure/integrator/gemini/mocks"
	"github.com/vfg2006/insights-assistant-api/internal/config"
	"go.uber.org/mock/gomock"
)

func textResponse(text string) *geminidomain.GenerateContentResponse {
	return &geminidomain.GenerateContentResponse{
		Candidates: []geminidomain.Candidate{{
			Content: &geminidomain.Content{Parts: []geminidomain.Part{{Text: text}}},
		}},
	}
}

func TestRESTGenerator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	generator := gemini.NewRESTGenerator(mockClient)

	tests := []struct {
		name       string
		setup      func()
		want       string
		wantErr    error
		wantStatus int
	}{
		{
			name: "texto do primeiro candidato",
			setup: func() {
				mockClient.EXPECT().
					GenerateContent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req geminidomain.GenerateContentRequest) (*geminidomain.GenerateContentResponse, error) {
						assert.Equal(t, "prompt", req.Contents[0].Parts[0].Text)
						assert.Equal(t, float32(gemini.Temperature), req.GenerationConfig.Temperature)
						assert.Equal(t, float32(gemini.TopP), req.GenerationConfig.TopP)
						assert.Equal(t, int32(gemini.ChatMaxOutputTokens), req.GenerationConfig.MaxOutputTokens)
						return textResponse("resposta"), nil
					})
			},
			want: "resposta",
		},
		{
			name: "status 500 vira RequestFailed",
			setup: func() {
				mockClient.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).
					Return(nil, &geminiclient.StatusError{StatusCode: http.StatusInternalServerError})
			},
			wantErr:    gemini.ErrRequestFailed,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "falha de transporte vira RequestFailed",
			setup: func() {
				mockClient.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("dial tcp: timeout"))
			},
			wantErr: gemini.ErrRequestFailed,
		},
		{
			name: "sem candidatos vira EmptyResponse",
			setup: func() {
				mockClient.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).
					Return(&geminidomain.GenerateContentResponse{}, nil)
			},
			wantErr: gemini.ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			text, err := generator.Generate(context.Background(), gemini.GenerationRequest{
				Prompt:          "prompt",
				MaxOutputTokens: gemini.ChatMaxOutputTokens,
			})

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, text)
				return
			}

			assert.Empty(t, text)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, gemini.IsGenerationError(err))

			var genErr *gemini.GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, tt.wantStatus, genErr.StatusCode)
		})
	}
}

func TestNew_SelectsDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Generation.Driver = "rest"
	assert.IsType(t, &gemini.RESTGenerator{}, gemini.New(cfg))

	cfg.Generation.Driver = "SDK"
	assert.IsType(t, &gemini.SDKGenerator{}, gemini.New(cfg))
}
