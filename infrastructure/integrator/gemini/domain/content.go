package geminidomain

// GenerateContentRequest é o corpo de POST /v1beta/models/{model}:generateContent
type GenerateContentRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"topP"`
	MaxOutputTokens int32   `json:"maxOutputTokens"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content      *Content `json:"content"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// FirstText devolve o texto da primeira parte do primeiro candidato
func (r *GenerateContentResponse) FirstText() (string, bool) {
	if r == nil || len(r.Candidates) == 0 {
		return "", false
	}

	content := r.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", false
	}

	return content.Parts[0].Text, content.Parts[0].Text != ""
}

// NewTextRequest monta uma requisição de turno único com o texto do prompt
func NewTextRequest(prompt string, cfg GenerationConfig) GenerateContentRequest {
	return GenerateContentRequest{
		Contents:         []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: cfg,
	}
}
