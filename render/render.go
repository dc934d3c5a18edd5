// Package render maps a block document to read-only HTML. Each block renders
// in array order to its own unit, either a semantic fragment or a typed
// placeholder; a single bad block never aborts the rest of the document.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/project-editor-backend/document"
)

// Placeholder identifies why a block could not be rendered normally.
type Placeholder string

const (
	PlaceholderNoContent       Placeholder = "no_content"
	PlaceholderImageURLMissing Placeholder = "image_url_missing"
	PlaceholderEmbedURLMissing Placeholder = "embed_url_missing"
	PlaceholderUnsupported     Placeholder = "unsupported_type"
	PlaceholderRenderFailed    Placeholder = "render_failed"
)

// User-facing placeholder messages.
const (
	msgNoContent       = "콘텐츠를 불러올 수 없습니다."
	msgImageURLMissing = "이미지 URL이 없습니다"
	msgEmbedURLMissing = "임베드 URL이 없습니다"
	msgUnsupported     = "지원되지 않는 블록 타입: %s"
	msgRenderFailed    = "블록을 렌더링할 수 없습니다"
)

// Unit is the render outcome for one block: a semantic HTML fragment, or a
// typed placeholder with a user-facing message.
type Unit struct {
	BlockID     string      `json:"blockId,omitempty"`
	BlockType   string      `json:"blockType,omitempty"`
	HTML        string      `json:"html,omitempty"`
	Placeholder Placeholder `json:"placeholder,omitempty"`
	Message     string      `json:"message,omitempty"`
}

// Result is the ordered outcome of rendering one document.
type Result struct {
	Title string `json:"title"`
	Units []Unit `json:"units"`
}

// HTML joins the result's units into one markup string. Placeholder units
// render as marked divs so the viewer can style them.
func (r Result) HTML() string {
	var sb strings.Builder
	for _, unit := range r.Units {
		if unit.Placeholder != "" {
			fmt.Fprintf(&sb, `<div class="content-placeholder content-placeholder--%s"><p>%s</p></div>`,
				unit.Placeholder, html.EscapeString(unit.Message))
			continue
		}
		sb.WriteString(unit.HTML)
	}
	return sb.String()
}

// RenderDocument renders every block of doc in array order. An empty document
// yields a single no-content placeholder.
func RenderDocument(title string, doc document.Document) Result {
	result := Result{Title: title}

	if !doc.HasContent() {
		result.Units = []Unit{{Placeholder: PlaceholderNoContent, Message: msgNoContent}}
		return result
	}

	for _, block := range doc.Blocks {
		if unit, ok := renderBlock(block); ok {
			result.Units = append(result.Units, unit)
		}
	}

	return result
}

// renderBlock renders one block in isolation. Destructure failures and panics
// stay inside this boundary and come back as a render-failed placeholder; the
// second return value is false only for blocks that intentionally render
// nothing (an empty list).
func renderBlock(block document.Block) (unit Unit, keep bool) {
	unit = Unit{BlockID: block.ID, BlockType: block.Type}
	keep = true

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("blockId", block.ID).
				Str("blockType", block.Type).
				Interface("panic", r).
				Msg("block render panicked")
			unit.HTML = ""
			unit.Placeholder = PlaceholderRenderFailed
			unit.Message = msgRenderFailed
			keep = true
		}
	}()

	switch block.Type {
	case document.TypeHeader:
		data, err := block.Header()
		if err != nil {
			return failed(unit, err), true
		}
		unit.HTML = renderHeader(data)

	case document.TypeParagraph:
		data, err := block.Paragraph()
		if err != nil {
			return failed(unit, err), true
		}
		unit.HTML = renderParagraph(data)

	case document.TypeImage:
		data, err := block.Image()
		if err != nil {
			return failed(unit, err), true
		}
		if data.File.URL == "" {
			unit.Placeholder = PlaceholderImageURLMissing
			unit.Message = msgImageURLMissing
			return unit, true
		}
		unit.HTML = renderImage(data)

	case document.TypeList:
		data, err := block.List()
		if err != nil {
			return failed(unit, err), true
		}
		if len(data.Items) == 0 {
			// An empty list renders nothing at all. Intentional, not an error.
			return Unit{}, false
		}
		unit.HTML = renderList(data)

	case document.TypeEmbed:
		data, err := block.Embed()
		if err != nil {
			return failed(unit, err), true
		}
		if data.Embed == "" {
			unit.Placeholder = PlaceholderEmbedURLMissing
			unit.Message = msgEmbedURLMissing
			return unit, true
		}
		unit.HTML = renderEmbed(data)

	default:
		log.Warn().
			Str("blockId", block.ID).
			Str("blockType", block.Type).
			Msg("unsupported block type")
		unit.Placeholder = PlaceholderUnsupported
		unit.Message = fmt.Sprintf(msgUnsupported, block.Type)
	}

	return unit, true
}

func failed(unit Unit, err error) Unit {
	log.Error().
		Err(err).
		Str("blockId", unit.BlockID).
		Str("blockType", unit.BlockType).
		Msg("block data failed to destructure")
	unit.Placeholder = PlaceholderRenderFailed
	unit.Message = msgRenderFailed
	return unit
}
