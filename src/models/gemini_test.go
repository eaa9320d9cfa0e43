package models

import (
	"testing"

	genai "github.com/google/generative-ai-go/genai"
)

func TestGeminiPartsKeepsUnattachableImages(t *testing.T) {
	parts := []Part{
		TextPart("Summarize"),
		ImagePart("image/bmp", []byte{1, 2, 3, 4}),
		ImagePart("image/png", []byte{5, 6}),
	}

	got := geminiParts(parts)
	if len(got) != len(parts) {
		t.Fatalf("len = %d, want %d: no part may vanish", len(got), len(parts))
	}

	txt, ok := got[1].(genai.Text)
	if !ok {
		t.Fatalf("part 1 = %T, want a text placeholder for the bmp", got[1])
	}
	if want := "[image attachment: image/bmp, 4 bytes]"; string(txt) != want {
		t.Fatalf("placeholder = %q, want %q", txt, want)
	}

	blob, ok := got[2].(genai.Blob)
	if !ok {
		t.Fatalf("part 2 = %T, want an inline blob for the png", got[2])
	}
	if blob.MIMEType != "image/png" || len(blob.Data) != 2 {
		t.Fatalf("blob = %q/%d bytes, want image/png with 2 bytes", blob.MIMEType, len(blob.Data))
	}
}
