package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/rpupo63/project-editor-backend/document"
	"github.com/rpupo63/project-editor-backend/sanitize"
)

// Block text fields carry inline markup the editor already filtered, so they
// go through the sanitizer and are embedded as markup, not re-escaped.
// Attribute values (URLs, alt text) are escaped instead.

func renderHeader(data document.HeaderData) string {
	level := clampLevel(data.Level)
	return fmt.Sprintf(`<h%d class="content-h%d">%s</h%d>`, level, level, sanitize.Sanitize(data.Text), level)
}

func renderParagraph(data document.ParagraphData) string {
	return `<p class="content-paragraph">` + sanitize.Sanitize(data.Text) + `</p>`
}

func renderImage(data document.ImageData) string {
	var sb strings.Builder
	sb.WriteString(`<figure class="content-image">`)
	sb.WriteString(`<img src="` + html.EscapeString(data.File.URL) + `"`)
	sb.WriteString(` alt="` + html.EscapeString(data.Caption) + `"`)
	sb.WriteString(` loading="lazy"`)
	if data.File.Width > 0 {
		fmt.Fprintf(&sb, ` width="%d"`, data.File.Width)
	}
	if data.File.Height > 0 {
		fmt.Fprintf(&sb, ` height="%d"`, data.File.Height)
	}
	sb.WriteString(`>`)
	if data.Caption != "" {
		sb.WriteString(`<figcaption class="content-image-caption">` + sanitize.Sanitize(data.Caption) + `</figcaption>`)
	}
	sb.WriteString(`</figure>`)
	return sb.String()
}

func renderList(data document.ListData) string {
	tag := "ul"
	class := "content-list content-list--unordered"
	if data.Style == document.StyleOrdered {
		tag = "ol"
		class = "content-list content-list--ordered"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<%s class="%s">`, tag, class)
	for _, item := range data.Items {
		sb.WriteString(`<li>` + sanitize.Sanitize(item) + `</li>`)
	}
	fmt.Fprintf(&sb, `</%s>`, tag)
	return sb.String()
}

func renderEmbed(data document.EmbedData) string {
	title := data.Caption
	if title == "" {
		title = "Embedded content"
	}

	var sb strings.Builder
	sb.WriteString(`<div class="content-embed">`)
	sb.WriteString(`<div class="content-embed-frame" style="aspect-ratio: 16 / 9">`)
	sb.WriteString(`<iframe src="` + html.EscapeString(data.Embed) + `"`)
	sb.WriteString(` width="100%" height="100%" allowfullscreen`)
	sb.WriteString(` title="` + html.EscapeString(title) + `"></iframe>`)
	sb.WriteString(`</div>`)
	if data.Caption != "" {
		sb.WriteString(`<p class="content-embed-caption">` + sanitize.Sanitize(data.Caption) + `</p>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
