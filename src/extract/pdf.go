package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor implements Extractor for application/pdf.
type PDFExtractor struct{}

func (PDFExtractor) Supports(mt string) bool {
	return mt == MediaTypePDF
}

func (PDFExtractor) Extract(_ string, data []byte) (Content, error) {
	rdr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Content{}, err
	}

	var b strings.Builder
	for i := 1; i <= rdr.NumPage(); i++ {
		pg := rdr.Page(i)
		if pg.V.IsNull() {
			continue
		}
		txt, err := pg.GetPlainText(nil)
		if err != nil {
			// Image-only or problematic page — skip gracefully.
			continue
		}
		b.WriteString(txt)
	}
	return TextContent(b.String()), nil
}
