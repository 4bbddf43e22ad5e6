package assistant

import (
	"regexp"
	"strings"

	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

const emphasisMarker = "**"

var (
	emphasisRunRegex  = regexp.MustCompile(`\*{3,}`)
	paragraphSepRegex = regexp.MustCompile(`\n[ \t]*\n`)
	headingRegex      = regexp.MustCompile(`^\*\*([^*]+)\*\*$`)
	numberedRegex     = regexp.MustCompile(`^\d+\.\s+`)
	bulletPrefixes    = []string{"- ", "* ", "• "}
)

// FormatRichText converte a resposta do modelo em blocos tipados, na ordem
// em que aparecem. É pura: a mesma entrada gera sempre os mesmos blocos.
func FormatRichText(raw string) []domain.Block {
	text := normalizeEmphasis(strings.ReplaceAll(raw, "\r\n", "\n"))

	blocks := make([]domain.Block, 0)
	for _, paragraph := range paragraphSepRegex.Split(text, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if strings.TrimSpace(strings.ReplaceAll(paragraph, "*", "")) == "" {
			continue
		}
		blocks = append(blocks, classifyParagraph(paragraph))
	}

	return blocks
}

// normalizeEmphasis remove pares vazios e reduz sequências de 3 ou mais
// marcadores para exatamente 2
func normalizeEmphasis(text string) string {
	text = removeEmptyPairs(text)
	text = emphasisRunRegex.ReplaceAllString(text, emphasisMarker)
	return removeEmptyPairs(text)
}

// removeEmptyPairs casa os marcadores de cada linha da esquerda para a direita
// e descarta os pares sem conteúdo
func removeEmptyPairs(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		parts := strings.Split(line, emphasisMarker)
		if len(parts) < 3 {
			continue
		}

		var b strings.Builder
		b.WriteString(parts[0])
		for k := 1; k < len(parts); k += 2 {
			if k+1 >= len(parts) {
				b.WriteString(emphasisMarker)
				b.WriteString(parts[k])
				break
			}

			inner := parts[k]
			if strings.TrimSpace(inner) != "" {
				b.WriteString(emphasisMarker)
				b.WriteString(inner)
				b.WriteString(emphasisMarker)
			} else {
				b.WriteString(inner)
			}
			b.WriteString(parts[k+1])
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func classifyParagraph(paragraph string) domain.Block {
	if m := headingRegex.FindStringSubmatch(paragraph); m != nil {
		return domain.Block{Kind: domain.BlockHeading, Text: strings.TrimSpace(m[1])}
	}

	lines := nonEmptyLines(paragraph)

	if items, ok := listItems(lines, stripBullet); ok {
		return domain.Block{Kind: domain.BlockBulletList, Items: items}
	}

	if items, ok := listItems(lines, stripNumber); ok {
		return domain.Block{Kind: domain.BlockNumberedList, Items: items}
	}

	inlines := parseInlines(strings.Join(lines, "\n"))
	return domain.Block{Kind: domain.BlockParagraph, Text: inlineText(inlines), Inlines: inlines}
}

func nonEmptyLines(paragraph string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(paragraph, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func listItems(lines []string, strip func(string) (string, bool)) ([]domain.ListItem, bool) {
	items := make([]domain.ListItem, 0, len(lines))
	for _, line := range lines {
		content, ok := strip(line)
		if !ok {
			return nil, false
		}
		inlines := parseInlines(content)
		items = append(items, domain.ListItem{Text: inlineText(inlines), Inlines: inlines})
	}
	return items, len(items) > 0
}

func stripBullet(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}

func stripNumber(line string) (string, bool) {
	loc := numberedRegex.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	return strings.TrimSpace(line[loc[1]:]), true
}

// parseInlines transforma trechos entre marcadores em spans em negrito.
// Um marcador sem par é mantido como texto.
func parseInlines(text string) []domain.Inline {
	parts := strings.Split(text, emphasisMarker)
	inlines := make([]domain.Inline, 0, len(parts))

	appendInline := func(value string, strong bool) {
		if value == "" {
			return
		}
		if n := len(inlines); n > 0 && inlines[n-1].Strong == strong {
			inlines[n-1].Text += value
			return
		}
		inlines = append(inlines, domain.Inline{Text: value, Strong: strong})
	}

	appendInline(parts[0], false)
	for k := 1; k < len(parts); k += 2 {
		if k+1 >= len(parts) {
			appendInline(emphasisMarker+parts[k], false)
			break
		}
		appendInline(parts[k], true)
		appendInline(parts[k+1], false)
	}

	return inlines
}

func inlineText(inlines []domain.Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		b.WriteString(in.Text)
	}
	return b.String()
}
