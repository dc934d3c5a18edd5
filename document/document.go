package document

import (
	"encoding/json"
	"errors"
)

// Block type discriminators produced by the editor.
const (
	TypeParagraph = "paragraph"
	TypeHeader    = "header"
	TypeImage     = "image"
	TypeList      = "list"
	TypeEmbed     = "embed"
)

// List styles.
const (
	StyleOrdered   = "ordered"
	StyleUnordered = "unordered"
)

// Document is the portable interchange format produced by the block editor and
// consumed by the viewer. Time is epoch milliseconds; Version is the editor
// version that produced the document.
type Document struct {
	Time    int64   `json:"time"`
	Blocks  []Block `json:"blocks"`
	Version string  `json:"version"`
}

// HasContent reports whether the document carries at least one block. An empty
// block list is the explicit "no content" state, never valid content.
func (d Document) HasContent() bool {
	return len(d.Blocks) > 0
}

// Block is one unit of rich content. Data stays raw so blocks with types this
// build does not know about survive a decode/encode round trip unchanged; the
// typed accessors below destructure the payload for known types on demand.
type Block struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ParagraphData is the payload of a paragraph block.
type ParagraphData struct {
	Text string `json:"text"`
}

// HeaderData is the payload of a header block. Level is clamped to 1-6 at
// render time, not here.
type HeaderData struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// ImageFile describes an uploaded image as returned by the upload endpoint.
type ImageFile struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ImageData is the payload of an image block.
type ImageData struct {
	File    ImageFile `json:"file"`
	Caption string    `json:"caption,omitempty"`
}

// ListData is the payload of a list block.
type ListData struct {
	Items []string `json:"items"`
	Style string   `json:"style"`
}

// EmbedData is the payload of an embed block. Embed is the iframe source URL.
type EmbedData struct {
	Embed   string `json:"embed"`
	Caption string `json:"caption,omitempty"`
}

var errNoData = errors.New("block has no data")

func (b Block) decode(v any) error {
	if len(b.Data) == 0 || string(b.Data) == "null" {
		return errNoData
	}
	return json.Unmarshal(b.Data, v)
}

// Paragraph destructures the block payload as paragraph data.
func (b Block) Paragraph() (ParagraphData, error) {
	var data ParagraphData
	err := b.decode(&data)
	return data, err
}

// Header destructures the block payload as header data.
func (b Block) Header() (HeaderData, error) {
	var data HeaderData
	err := b.decode(&data)
	return data, err
}

// Image destructures the block payload as image data.
func (b Block) Image() (ImageData, error) {
	var data ImageData
	err := b.decode(&data)
	return data, err
}

// List destructures the block payload as list data.
func (b Block) List() (ListData, error) {
	var data ListData
	err := b.decode(&data)
	return data, err
}

// Embed destructures the block payload as embed data.
func (b Block) Embed() (EmbedData, error) {
	var data EmbedData
	err := b.decode(&data)
	return data, err
}
