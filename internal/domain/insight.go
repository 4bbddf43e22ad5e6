package domain

import "time"

type InsightType string

const (
	InsightTypeInsight        InsightType = "insight"
	InsightTypeRecommendation InsightType = "recommendation"
	InsightTypeAlert          InsightType = "alert"
	InsightTypeOpportunity    InsightType = "opportunity"
)

type InsightPriority string

const (
	PriorityHigh   InsightPriority = "high"
	PriorityMedium InsightPriority = "medium"
	PriorityLow    InsightPriority = "low"
)

// Insight usa exatamente os nomes de campo pedidos ao modelo no prompt
type Insight struct {
	Type       InsightType     `json:"type"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Priority   InsightPriority `json:"priority"`
	Category   string          `json:"category"`
	Impact     string          `json:"impact,omitempty"`
	Actionable *bool           `json:"actionable,omitempty"`
}

// InsightBatch substitui integralmente o lote anterior a cada geração
type InsightBatch struct {
	ID             string         `json:"id"`
	Insights       []Insight      `json:"insights"`
	Degraded       bool           `json:"degraded"`
	SnapshotSource SnapshotSource `json:"snapshotSource"`
	GeneratedAt    time.Time      `json:"generatedAt"`
}
