package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/insights-assistant-api/internal/config"
	"github.com/vfg2006/insights-assistant-api/pkg/apiErrors"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const operatorPassword = "S3nha!forte"

func newService(t *testing.T) *Service {
	t.Helper()
	log.SetupTestLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte(operatorPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(config.Auth{
		Enabled:              true,
		Secret:               "test-secret",
		OperatorEmail:        "Owner@Example.com",
		OperatorPasswordHash: string(hash),
		TokenTTL:             time.Hour,
	})
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "credenciais válidas", email: " owner@example.com ", password: operatorPassword},
		{name: "senha incorreta", email: "owner@example.com", password: "wrong", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "email desconhecido", email: "other@example.com", password: operatorPassword, wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "dados ausentes", email: "", password: "", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(t)

			token, err := service.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "owner@example.com", claims.UserEmail)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := newService(t)

	t.Run("token expirado", func(t *testing.T) {
		issued := time.Now().Add(-2 * time.Hour)
		service.now = func() time.Time { return issued }
		token, err := service.Login("owner@example.com", operatorPassword)
		require.NoError(t, err)

		service.now = time.Now
		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsTokenError(err))
	})

	t.Run("assinatura de outro segredo", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "owner@example.com"})
		signed, err := token.SignedString([]byte("another-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_NotConfigured(t *testing.T) {
	service := NewService(config.Auth{})

	_, err := service.Login("owner@example.com", "x")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = service.ValidateToken("x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
