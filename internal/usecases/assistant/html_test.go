package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

func TestRenderHTML(t *testing.T) {
	blocks := FormatRichText("**Summary**\n\nSales are **up**.\n\n- one\n- two\n\n1. first\n2. second")

	html := RenderHTML(blocks)

	assert.Equal(t, "<h3>Summary</h3>\n"+
		"<p>Sales are <strong>up</strong>.</p>\n"+
		"<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n"+
		"<ol>\n<li>first</li>\n<li>second</li>\n</ol>\n", html)
}

func TestRenderHTML_EscapesRawHTML(t *testing.T) {
	html := RenderHTML(FormatRichText("<script>alert(1)</script> & **<b>x</b>**"))

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>")
	assert.Equal(t, "<p>&lt;script&gt;alert(1)&lt;/script&gt; &amp; <strong>&lt;b&gt;x&lt;/b&gt;</strong></p>\n", html)
}

func TestRenderHTML_ParagraphStaysParagraph(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "linha com marcador de lista",
			raw:  "Note:\n- a\nplain text",
			want: "<p>Note:<br>\n- a<br>\nplain text</p>\n",
		},
		{
			name: "linha com cerquilha",
			raw:  "# Big\nplain",
			want: "<p># Big<br>\nplain</p>\n",
		},
		{
			name: "asterisco simples",
			raw:  "a *b* c",
			want: "<p>a *b* c</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := FormatRichText(tt.raw)
			require.Len(t, blocks, 1)
			require.Equal(t, domain.BlockParagraph, blocks[0].Kind)

			assert.Equal(t, tt.want, RenderHTML(blocks))
		})
	}
}

func TestRenderHTML_BlockWithoutInlines(t *testing.T) {
	html := RenderHTML([]domain.Block{
		{Kind: domain.BlockParagraph, Text: "plain"},
		{Kind: domain.BlockBulletList, Items: []domain.ListItem{{Text: "item"}}},
	})

	assert.Equal(t, "<p>plain</p>\n<ul>\n<li>item</li>\n</ul>\n", html)
}
