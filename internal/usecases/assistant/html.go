package assistant

import (
	"strings"

	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/yuin/goldmark/util"
)

// RenderHTML converte os blocos em HTML para a camada de exibição, seguindo a
// classificação já feita: um parágrafo continua sendo um único <p>, mesmo que
// alguma linha pareça item de lista ou título. Todo texto é escapado.
func RenderHTML(blocks []domain.Block) string {
	var b strings.Builder
	for _, block := range blocks {
		switch block.Kind {
		case domain.BlockHeading:
			b.WriteString("<h3>")
			writeEscaped(&b, block.Text)
			b.WriteString("</h3>\n")
		case domain.BlockBulletList:
			writeList(&b, "ul", block.Items)
		case domain.BlockNumberedList:
			writeList(&b, "ol", block.Items)
		default:
			b.WriteString("<p>")
			writeInlines(&b, block.Inlines, block.Text)
			b.WriteString("</p>\n")
		}
	}
	return b.String()
}

func writeList(b *strings.Builder, tag string, items []domain.ListItem) {
	b.WriteString("<" + tag + ">\n")
	for _, item := range items {
		b.WriteString("<li>")
		writeInlines(b, item.Inlines, item.Text)
		b.WriteString("</li>\n")
	}
	b.WriteString("</" + tag + ">\n")
}

// writeInlines usa o texto puro quando o bloco não tem spans
func writeInlines(b *strings.Builder, inlines []domain.Inline, text string) {
	if len(inlines) == 0 {
		writeEscaped(b, text)
		return
	}
	for _, in := range inlines {
		if in.Strong {
			b.WriteString("<strong>")
			writeEscaped(b, in.Text)
			b.WriteString("</strong>")
			continue
		}
		writeEscaped(b, in.Text)
	}
}

// quebras de linha dentro do bloco viram <br>
func writeEscaped(b *strings.Builder, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("<br>\n")
		}
		b.Write(util.EscapeHTML([]byte(line)))
	}
}
