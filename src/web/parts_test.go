package web

import (
	"testing"

	"github.com/drivelens/drivelens/src/models"
)

func TestAssemblePromptOrdering(t *testing.T) {
	parts := AssemblePrompt("Summarize", []models.Part{
		models.TextPart("A"),
		models.TextPart("B"),
	})
	want := []string{"Summarize", "A", "B"}
	if len(parts) != len(want) {
		t.Fatalf("got %d parts, want %d", len(parts), len(want))
	}
	for i, w := range want {
		if parts[i].Text != w {
			t.Errorf("parts[%d].Text = %q, want %q", i, parts[i].Text, w)
		}
	}
}

func TestAssemblePromptKeepsImagesInPlace(t *testing.T) {
	img := models.ImagePart("image/png", []byte{1, 2})
	parts := AssemblePrompt("look", []models.Part{
		models.TextPart("before"),
		img,
		models.TextPart("after"),
	})
	if !parts[2].IsImage() {
		t.Fatal("image part moved out of position")
	}
	if parts[0].Text != "look" {
		t.Fatal("prompt must come first")
	}
}

func TestAssemblePromptNoFiles(t *testing.T) {
	parts := AssemblePrompt("just the prompt", nil)
	if len(parts) != 1 || parts[0].Text != "just the prompt" {
		t.Fatalf("parts = %+v", parts)
	}
}

func TestDocumentText(t *testing.T) {
	got := DocumentText("notes.txt", "body")
	want := "\n--- DOCUMENT: notes.txt ---\nbody"
	if got != want {
		t.Fatalf("DocumentText = %q, want %q", got, want)
	}
}
