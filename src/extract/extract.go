package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Media types the dispatcher recognizes beyond the text/ and image/ prefixes.
const (
	MediaTypePDF          = "application/pdf"
	MediaTypeWord         = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeWordLegacy   = "application/msword"
	MediaTypePresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// Kind discriminates the Content union.
type Kind int

const (
	KindText Kind = iota
	KindImage
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return "unsupported"
	}
}

// Content is the result of extracting one file: exactly one variant,
// never partial. Text carries decoded text, Image carries the raw bytes
// plus their media type, Unsupported carries a human-readable reason.
type Content struct {
	Kind   Kind
	Text   string
	Data   []byte
	MIME   string
	Reason string
}

func TextContent(s string) Content {
	return Content{Kind: KindText, Text: s}
}

func ImageContent(mediaType string, data []byte) Content {
	return Content{Kind: KindImage, MIME: mediaType, Data: data}
}

func UnsupportedContent(reason string) Content {
	return Content{Kind: KindUnsupported, Reason: reason}
}

// Extractor converts raw file bytes into Content for the media types it
// supports.
type Extractor interface {
	Supports(mediaType string) bool
	Extract(mediaType string, data []byte) (Content, error)
}

// PDF first so application/pdf never falls through to anything generic.
func defaultExtractors() []Extractor {
	return []Extractor{
		PDFExtractor{},
		WordExtractor{},
		SlidesExtractor{},
		TextExtractor{},
		ImageExtractor{},
	}
}

// FromBytes classifies data by its declared media type and produces
// exactly one Content variant. It never panics: extraction failures come
// back as the Unsupported variant with the failure in the reason.
func FromBytes(name, mediaType string, data []byte) Content {
	mt := normalizeMediaType(mediaType)
	for _, ex := range defaultExtractors() {
		if !ex.Supports(mt) {
			continue
		}
		c, err := runExtractor(ex, mt, data)
		if err != nil {
			return UnsupportedContent(fmt.Sprintf("reading %s: %v", name, err))
		}
		return c
	}
	return UnsupportedContent(fmt.Sprintf("unsupported media type: %s", mediaType))
}

// runExtractor converts a parser panic into an error. The PDF reader
// faults on corrupt objects instead of returning them, and a bad file
// must skip with a warning, not abort the request.
func runExtractor(ex Extractor, mediaType string, data []byte) (c Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			c = Content{}
			err = fmt.Errorf("%v", r)
		}
	}()
	return ex.Extract(mediaType, data)
}

// normalizeMediaType lowercases and strips parameters such as
// "; charset=utf-8".
func normalizeMediaType(mt string) string {
	mt = strings.ToLower(strings.TrimSpace(mt))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}

type TextExtractor struct{}

func (TextExtractor) Supports(mt string) bool {
	return strings.HasPrefix(mt, "text/")
}

func (TextExtractor) Extract(_ string, data []byte) (Content, error) {
	return TextContent(decodeLossy(data)), nil
}

// decodeLossy decodes bytes as UTF-8, substituting U+FFFD for
// undecodable sequences.
func decodeLossy(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

type ImageExtractor struct{}

func (ImageExtractor) Supports(mt string) bool {
	return strings.HasPrefix(mt, "image/")
}

func (ImageExtractor) Extract(mediaType string, data []byte) (Content, error) {
	// Bytes stay uninterpreted; the model client attaches them as-is.
	return ImageContent(mediaType, data), nil
}
