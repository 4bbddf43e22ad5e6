package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

func TestDecodeInsights(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
		wantErr error
	}{
		{
			name:    "array cercado por texto",
			raw:     "Here are your insights:\n```json\n[{\"type\":\"alert\",\"title\":\"Low stock\",\"content\":\"15 items\",\"priority\":\"high\",\"category\":\"Inventory\"}]\n```\nGood luck!",
			wantLen: 1,
		},
		{
			name:    "colchetes dentro do conteúdo",
			raw:     `[{"type":"insight","title":"A [note]","content":"x","priority":"low","category":"Sales"},{"type":"opportunity","title":"B","content":"y","priority":"medium","category":"Customer","actionable":false}]`,
			wantLen: 2,
		},
		{
			name:    "sem array",
			raw:     "Revenue is growing steadily.",
			wantErr: ErrNoInsightArray,
		},
		{
			name:    "array inválido",
			raw:     `[{"type": "insight", "title": ]`,
			wantErr: ErrInvalidInsightArray,
		},
		{
			name:    "array vazio",
			raw:     `[]`,
			wantErr: ErrInvalidInsightArray,
		},
		{
			name:    "objeto vazio",
			raw:     `[{}]`,
			wantErr: ErrInvalidInsightArray,
		},
		{
			name:    "título em branco",
			raw:     `[{"type":"alert","title":"  ","content":"x","priority":"high","category":"Sales"}]`,
			wantErr: ErrInvalidInsightArray,
		},
		{
			name:    "tipo desconhecido",
			raw:     `[{"type":"warning","title":"T","content":"C","priority":"high","category":"Sales"}]`,
			wantErr: ErrInvalidInsightArray,
		},
		{
			name:    "prioridade desconhecida",
			raw:     `[{"type":"alert","title":"T","content":"C","priority":"urgent","category":"Sales"}]`,
			wantErr: ErrInvalidInsightArray,
		},
		{
			name:    "um item inválido invalida a lista",
			raw:     `[{"type":"alert","title":"T","content":"C","priority":"high","category":"Sales"},{"title":"T"}]`,
			wantErr: ErrInvalidInsightArray,
		},
		{
			name:    "texto com dois arrays separados",
			raw:     `[1] and later [2]`,
			wantErr: ErrInvalidInsightArray,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights, err := DecodeInsights(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var parseErr *ParseError
				assert.ErrorAs(t, err, &parseErr)
				assert.Nil(t, insights)
				return
			}

			require.NoError(t, err)
			assert.Len(t, insights, tt.wantLen)
		})
	}
}

func TestDecodeInsights_KeepsFields(t *testing.T) {
	insights, err := DecodeInsights(`[{"type":"recommendation","title":"T","content":"C","priority":"medium","category":"Financial","impact":"I","actionable":false}]`)

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, domain.InsightTypeRecommendation, insights[0].Type)
	assert.Equal(t, domain.PriorityMedium, insights[0].Priority)
	assert.Equal(t, "I", insights[0].Impact)
	require.NotNil(t, insights[0].Actionable)
	assert.False(t, *insights[0].Actionable)
}

func TestFallbackInsights(t *testing.T) {
	raw := "line one\n\n  line two  \nline three\nline four\n\t\nline five\nline six\nline seven\nline eight"

	insights := FallbackInsights(raw)

	require.Len(t, insights, 6)

	wantTypes := []domain.InsightType{"insight", "recommendation", "alert", "opportunity", "insight", "recommendation"}
	wantPriorities := []domain.InsightPriority{"high", "high", "medium", "medium", "low", "low"}
	wantCategories := []string{"Financial", "Sales", "Inventory", "Customer", "Operations", "Financial"}

	for i, insight := range insights {
		assert.Equal(t, wantTypes[i], insight.Type, i)
		assert.Equal(t, wantPriorities[i], insight.Priority, i)
		assert.Equal(t, wantCategories[i], insight.Category, i)
		assert.Equal(t, "Significant business impact expected", insight.Impact)
		require.NotNil(t, insight.Actionable)
		assert.True(t, *insight.Actionable)
	}

	assert.Equal(t, "Business Intelligence 1", insights[0].Title)
	assert.Equal(t, "line two", insights[1].Content)
	assert.Equal(t, "Business Intelligence 6", insights[5].Title)
	assert.Equal(t, "line six", insights[5].Content)
}

func TestFallbackInsights_IsIdempotent(t *testing.T) {
	raw := "a\nb\nc"
	assert.Equal(t, FallbackInsights(raw), FallbackInsights(raw))
	assert.Empty(t, FallbackInsights("  \n \n"))
}

func TestParseInsights(t *testing.T) {
	insights, degraded := ParseInsights(`[{"type":"alert","title":"T","content":"C","priority":"high","category":"Operations"}]`)
	assert.False(t, degraded)
	assert.Len(t, insights, 1)

	insights, degraded = ParseInsights(`[{}]`)
	assert.True(t, degraded)
	require.Len(t, insights, 1)
	assert.Equal(t, "[{}]", insights[0].Content)

	insights, degraded = ParseInsights("Cut costs.\nCollect receivables.")
	assert.True(t, degraded)
	require.Len(t, insights, 2)
	assert.Equal(t, "Collect receivables.", insights[1].Content)
}
