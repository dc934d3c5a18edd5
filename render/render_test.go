package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/project-editor-backend/document"
)

func rawBlock(id, blockType, data string) document.Block {
	block := document.Block{ID: id, Type: blockType}
	if data != "" {
		block.Data = json.RawMessage(data)
	}
	return block
}

func TestRenderDocumentEmpty(t *testing.T) {
	result := RenderDocument("빈 문서", document.Document{Version: "2.31.0"})

	assert.Equal(t, "빈 문서", result.Title)
	require.Len(t, result.Units, 1)
	assert.Equal(t, PlaceholderNoContent, result.Units[0].Placeholder)
	assert.Equal(t, "콘텐츠를 불러올 수 없습니다.", result.Units[0].Message)
}

func TestRenderDocumentOrder(t *testing.T) {
	doc := document.Document{Blocks: []document.Block{
		rawBlock("h1", document.TypeHeader, `{"text":"제목","level":2}`),
		rawBlock("p1", document.TypeParagraph, `{"text":"첫 문단"}`),
		rawBlock("p2", document.TypeParagraph, `{"text":"둘째 문단"}`),
	}}

	result := RenderDocument("순서", doc)
	require.Len(t, result.Units, 3)
	assert.Equal(t, "h1", result.Units[0].BlockID)
	assert.Equal(t, "p1", result.Units[1].BlockID)
	assert.Equal(t, "p2", result.Units[2].BlockID)
}

func TestRenderHeader(t *testing.T) {
	t.Run("renders the level as given", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("h", document.TypeHeader, `{"text":"소제목","level":3}`),
		}})
		require.Len(t, result.Units, 1)
		assert.Equal(t, `<h3 class="content-h3">소제목</h3>`, result.Units[0].HTML)
	})

	t.Run("clamps out-of-range levels", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("h1", document.TypeHeader, `{"text":"x","level":9}`),
			rawBlock("h2", document.TypeHeader, `{"text":"y","level":0}`),
		}})
		require.Len(t, result.Units, 2)
		assert.Contains(t, result.Units[0].HTML, "<h6")
		assert.Contains(t, result.Units[1].HTML, "<h1")
	})

	t.Run("sanitizes header text", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("h", document.TypeHeader, `{"text":"안전<script>alert(1)</script>","level":2}`),
		}})
		require.Len(t, result.Units, 1)
		assert.Equal(t, `<h2 class="content-h2">안전</h2>`, result.Units[0].HTML)
	})
}

func TestRenderParagraph(t *testing.T) {
	t.Run("wraps sanitized text", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("p", document.TypeParagraph, `{"text":"굵게 <b>강조</b> <script>bad()</script>끝"}`),
		}})
		require.Len(t, result.Units, 1)
		assert.Equal(t, `<p class="content-paragraph">굵게 <b>강조</b> 끝</p>`, result.Units[0].HTML)
	})

	t.Run("strips inline event handlers", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("p", document.TypeParagraph, `{"text":"<img src=\"x.png\" onerror=\"alert(1)\">"}`),
		}})
		require.Len(t, result.Units, 1)
		assert.Equal(t, `<p class="content-paragraph"><img src="x.png"></p>`, result.Units[0].HTML)
	})
}

func TestRenderImage(t *testing.T) {
	t.Run("missing URL becomes a typed placeholder", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("i", document.TypeImage, `{"file":{"url":""},"caption":"설명"}`),
		}})
		require.Len(t, result.Units, 1)
		assert.Equal(t, PlaceholderImageURLMissing, result.Units[0].Placeholder)
		assert.Equal(t, "이미지 URL이 없습니다", result.Units[0].Message)
		assert.Empty(t, result.Units[0].HTML)
	})

	t.Run("renders figure with lazy loading and dimensions", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("i", document.TypeImage, `{"file":{"url":"/uploads/a.png","width":800,"height":600},"caption":"사진"}`),
		}})
		require.Len(t, result.Units, 1)
		html := result.Units[0].HTML
		assert.Contains(t, html, `src="/uploads/a.png"`)
		assert.Contains(t, html, `loading="lazy"`)
		assert.Contains(t, html, `width="800"`)
		assert.Contains(t, html, `height="600"`)
		assert.Contains(t, html, "<figcaption")
		assert.Contains(t, html, "사진")
	})

	t.Run("omits zero dimensions and the empty caption", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("i", document.TypeImage, `{"file":{"url":"/uploads/a.png"}}`),
		}})
		require.Len(t, result.Units, 1)
		html := result.Units[0].HTML
		assert.NotContains(t, html, "width=")
		assert.NotContains(t, html, "height=")
		assert.NotContains(t, html, "figcaption")
	})

	t.Run("escapes the URL attribute", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("i", document.TypeImage, `{"file":{"url":"/a.png\" onerror=\"alert(1)"}}`),
		}})
		require.Len(t, result.Units, 1)
		assert.NotContains(t, result.Units[0].HTML, `onerror="alert(1)"`)
	})
}

func TestRenderList(t *testing.T) {
	t.Run("ordered style uses ol", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("l", document.TypeList, `{"items":["하나","둘"],"style":"ordered"}`),
		}})
		require.Len(t, result.Units, 1)
		html := result.Units[0].HTML
		assert.Contains(t, html, `<ol class="content-list content-list--ordered">`)
		assert.Contains(t, html, "<li>하나</li>")
		assert.Contains(t, html, "<li>둘</li>")
	})

	t.Run("anything but ordered uses ul", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("l", document.TypeList, `{"items":["x"],"style":"unordered"}`),
		}})
		require.Len(t, result.Units, 1)
		assert.Contains(t, result.Units[0].HTML, "<ul")
	})

	t.Run("empty list renders no unit at all", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("l", document.TypeList, `{"items":[],"style":"ordered"}`),
			rawBlock("p", document.TypeParagraph, `{"text":"뒤 문단"}`),
		}})
		require.Len(t, result.Units, 1)
		assert.Equal(t, "p", result.Units[0].BlockID)
	})

	t.Run("sanitizes items", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("l", document.TypeList, `{"items":["<script>x</script>안전"],"style":"unordered"}`),
		}})
		require.Len(t, result.Units, 1)
		assert.Contains(t, result.Units[0].HTML, "<li>안전</li>")
	})
}

func TestRenderEmbed(t *testing.T) {
	t.Run("missing embed URL becomes a typed placeholder", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("e", document.TypeEmbed, `{"embed":""}`),
		}})
		require.Len(t, result.Units, 1)
		assert.Equal(t, PlaceholderEmbedURLMissing, result.Units[0].Placeholder)
		assert.Equal(t, "임베드 URL이 없습니다", result.Units[0].Message)
	})

	t.Run("renders a responsive iframe", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("e", document.TypeEmbed, `{"embed":"https://youtube.com/embed/x","caption":"영상"}`),
		}})
		require.Len(t, result.Units, 1)
		html := result.Units[0].HTML
		assert.Contains(t, html, `src="https://youtube.com/embed/x"`)
		assert.Contains(t, html, "aspect-ratio: 16 / 9")
		assert.Contains(t, html, "allowfullscreen")
		assert.Contains(t, html, "영상")
	})
}

func TestRenderBlockFailures(t *testing.T) {
	t.Run("unsupported type names the type in the message", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("c", "code", `{"code":"x"}`),
		}})
		require.Len(t, result.Units, 1)
		assert.Equal(t, PlaceholderUnsupported, result.Units[0].Placeholder)
		assert.Equal(t, "지원되지 않는 블록 타입: code", result.Units[0].Message)
	})

	t.Run("malformed data becomes render failed", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("p", document.TypeParagraph, `["wrong","shape"]`),
		}})
		require.Len(t, result.Units, 1)
		assert.Equal(t, PlaceholderRenderFailed, result.Units[0].Placeholder)
		assert.Equal(t, "블록을 렌더링할 수 없습니다", result.Units[0].Message)
	})

	t.Run("absent data becomes render failed", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("p", document.TypeParagraph, ""),
		}})
		require.Len(t, result.Units, 1)
		assert.Equal(t, PlaceholderRenderFailed, result.Units[0].Placeholder)
	})

	t.Run("one bad block never hides its neighbors", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("p1", document.TypeParagraph, `{"text":"앞"}`),
			rawBlock("bad", document.TypeImage, `"broken"`),
			rawBlock("p2", document.TypeParagraph, `{"text":"뒤"}`),
		}})
		require.Len(t, result.Units, 3)
		assert.Empty(t, result.Units[0].Placeholder)
		assert.Equal(t, PlaceholderRenderFailed, result.Units[1].Placeholder)
		assert.Empty(t, result.Units[2].Placeholder)
	})
}

func TestResultHTML(t *testing.T) {
	t.Run("joins fragments and marks placeholders", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("p", document.TypeParagraph, `{"text":"본문"}`),
			rawBlock("c", "quiz", `{}`),
		}})

		html := result.HTML()
		assert.Contains(t, html, `<p class="content-paragraph">본문</p>`)
		assert.Contains(t, html, `content-placeholder--unsupported_type`)
		assert.Contains(t, html, "지원되지 않는 블록 타입: quiz")
	})

	t.Run("escapes placeholder messages", func(t *testing.T) {
		result := RenderDocument("", document.Document{Blocks: []document.Block{
			rawBlock("c", "<script>", `{}`),
		}})
		html := result.HTML()
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})
}
