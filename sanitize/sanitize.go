package sanitize

import "regexp"

// Inline tags the editor's rich-text fields are expected to produce. Stripping
// below is denylist-based, so tags outside this list still pass through; the
// list documents intent until allowlist enforcement lands.
// TODO: enforce the allowlist once the viewer styles are settled.
var allowedTags = []string{"b", "i", "u", "strong", "em", "br", "span"}

var (
	// A script element with its content, any attributes on the opening tag,
	// any case, anywhere in the fragment.
	scriptPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script[^>]*>`)

	// A leftover script tag with no matching close. The element pattern above
	// needs both tags, so strip stragglers separately.
	scriptTagPattern = regexp.MustCompile(`(?i)</?script\b[^>]*>`)

	// Inline event handler attributes: onX="...", onX='...', onX=bare.
	handlerQuotedPattern   = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*["'][^"']*["']`)
	handlerUnquotedPattern = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*[^\s>]+`)
)

// Sanitize strips <script> elements (including their content) and inline event
// handler attributes from an HTML fragment. The rest of the markup passes
// through unchanged. Empty input returns the empty string.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}

	html = scriptPattern.ReplaceAllString(html, "")
	html = scriptTagPattern.ReplaceAllString(html, "")
	html = handlerQuotedPattern.ReplaceAllString(html, "")
	html = handlerUnquotedPattern.ReplaceAllString(html, "")

	return html
}
