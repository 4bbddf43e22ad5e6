package domain

type BlockKind string

const (
	BlockHeading      BlockKind = "heading"
	BlockBulletList   BlockKind = "bullet_list"
	BlockNumberedList BlockKind = "numbered_list"
	BlockParagraph    BlockKind = "paragraph"
)

// Inline é um trecho de texto, em negrito ou não
type Inline struct {
	Text   string `json:"text"`
	Strong bool   `json:"strong,omitempty"`
}

// ListItem é um item de lista já sem o marcador
type ListItem struct {
	Text    string   `json:"text"`
	Inlines []Inline `json:"inlines"`
}

// Block é uma unidade de exibição da resposta do assistente
type Block struct {
	Kind    BlockKind  `json:"kind"`
	Text    string     `json:"text,omitempty"`
	Inlines []Inline   `json:"inlines,omitempty"`
	Items   []ListItem `json:"items,omitempty"`
}
