package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// OOXML documents are zip archives of XML parts. The readers below pull
// the visible text out of the word-processing and presentation layouts
// without modelling the rest of the format.

// WordExtractor implements Extractor for word-processing documents.
// Legacy application/msword bytes are not a zip archive, so they fail
// the archive open and surface as an Unsupported read error.
type WordExtractor struct{}

func (WordExtractor) Supports(mt string) bool {
	return mt == MediaTypeWord || mt == MediaTypeWordLegacy
}

func (WordExtractor) Extract(_ string, data []byte) (Content, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Content{}, fmt.Errorf("opening document archive: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return Content{}, errors.New("document archive has no word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return Content{}, err
	}
	defer rc.Close()

	paras, err := wordParagraphs(rc)
	if err != nil {
		return Content{}, fmt.Errorf("parsing document body: %w", err)
	}
	return TextContent(strings.Join(paras, "\n")), nil
}

// wordParagraphs streams word/document.xml and returns the text of each
// <w:p> paragraph in document order. Paragraph text is the concatenated
// character data of its <w:t> runs.
func wordParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var (
		paras  []string
		cur    strings.Builder
		inPara bool
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				cur.Reset()
			case "t":
				inText = inPara
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inPara {
					paras = append(paras, cur.String())
					inPara = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return paras, nil
}

// SlidesExtractor implements Extractor for presentation documents.
type SlidesExtractor struct{}

func (SlidesExtractor) Supports(mt string) bool {
	return mt == MediaTypePresentation
}

var slidePathRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

func (SlidesExtractor) Extract(_ string, data []byte) (Content, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Content{}, fmt.Errorf("opening presentation archive: %w", err)
	}

	type slideFile struct {
		num  int
		file *zip.File
	}
	var slides []slideFile
	for _, f := range zr.File {
		m := slidePathRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{num: n, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var b strings.Builder
	for _, s := range slides {
		rc, err := s.file.Open()
		if err != nil {
			return Content{}, err
		}
		texts, err := slideShapeTexts(rc)
		rc.Close()
		if err != nil {
			return Content{}, fmt.Errorf("parsing %s: %w", s.file.Name, err)
		}
		// Slide order, then shape order, each shape followed by a line break.
		for _, txt := range texts {
			b.WriteString(txt)
			b.WriteByte('\n')
		}
	}
	return TextContent(b.String()), nil
}

// slideShapeTexts returns the text of each <p:txBody> on a slide in
// shape order. Shape text is its <a:p> paragraphs joined by newlines.
func slideShapeTexts(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var (
		shapes []string
		paras  []string
		cur    strings.Builder
		inBody bool
		inPara bool
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "txBody":
				inBody = true
				paras = nil
			case "p":
				if inBody {
					inPara = true
					cur.Reset()
				}
			case "t":
				inText = inPara
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "txBody":
				if inBody {
					shapes = append(shapes, strings.Join(paras, "\n"))
					inBody = false
				}
			case "p":
				if inPara {
					paras = append(paras, cur.String())
					inPara = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return shapes, nil
}
