package models

import "context"

// Part is one element of a multimodal prompt: inline text, or raw image
// bytes with their media type. Exactly one of Text / Data is set.
type Part struct {
	Text string
	MIME string
	Data []byte
}

func TextPart(s string) Part {
	return Part{Text: s}
}

func ImagePart(mediaType string, data []byte) Part {
	return Part{MIME: mediaType, Data: data}
}

func (p Part) IsImage() bool {
	return len(p.Data) > 0
}

// Agent is a hosted model that answers a prompt, optionally with an
// ordered sequence of multimodal parts. By convention the first part is
// the user's prompt; the order of the rest is preserved on the wire.
type Agent interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateWithParts(ctx context.Context, parts []Part) (string, error)
}
