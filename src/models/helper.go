package models

import (
	"context"
	"fmt"
	"strings"
)

// NewProvider returns a concrete Agent.
func NewProvider(ctx context.Context, provider, model string) (Agent, error) {
	switch provider {
	case "gemini", "google":
		return NewGeminiLLM(ctx, model)
	case "openai":
		return NewOpenAILLM(model), nil
	case "anthropic", "claude":
		return NewAnthropicLLM(model), nil
	case "ollama":
		return NewOllamaLLM(model)
	case "dummy":
		return NewDummyLLM(""), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

// sanitizeForGemini coerces edge cases and filters to image types Gemini
// will accept as inline blobs. Return "" to skip attaching.
func sanitizeForGemini(mt string) string {
	mt = strings.ToLower(strings.TrimSpace(mt))

	// Fix double-prefix issues that sometimes slip through listing data
	for strings.HasPrefix(mt, "image/image/") {
		mt = "image/" + strings.TrimPrefix(mt, "image/image/")
	}

	switch {
	case mt == "":
		return ""
	case mt == "image/png" || strings.HasPrefix(mt, "image/png;"):
		return "image/png"
	case mt == "image/jpeg" || mt == "image/jpg" || mt == "image/pjpeg" ||
		strings.HasPrefix(mt, "image/jpeg;") || strings.HasPrefix(mt, "image/jpg;"):
		return "image/jpeg"
	case mt == "image/webp" || strings.HasPrefix(mt, "image/webp;"):
		return "image/webp"
	case mt == "image/gif" || strings.HasPrefix(mt, "image/gif;"):
		return "image/gif"
	case mt == "image/heic" || strings.HasPrefix(mt, "image/heic;"):
		return "image/heic"
	case mt == "image/heif" || strings.HasPrefix(mt, "image/heif;"):
		return "image/heif"
	default:
		// Unknown/unsupported -> skip attach
		return ""
	}
}

// openAIImageMIME converts media types to OpenAI's accepted image set.
func openAIImageMIME(mt string) string {
	switch strings.ToLower(strings.TrimSpace(mt)) {
	case "image/jpeg", "image/jpg":
		return "image/jpeg"
	case "image/png":
		return "image/png"
	case "image/gif":
		return "image/gif"
	case "image/webp":
		return "image/webp"
	default:
		return ""
	}
}

// anthropicImageMIME converts media types to Anthropic's accepted image set.
func anthropicImageMIME(mt string) string {
	switch strings.ToLower(strings.TrimSpace(mt)) {
	case "image/jpeg", "image/jpg":
		return "image/jpeg"
	case "image/png":
		return "image/png"
	case "image/gif":
		return "image/gif"
	case "image/webp":
		return "image/webp"
	default:
		return ""
	}
}

// attachmentPlaceholder stands in for an image a provider cannot attach.
// Substituting it keeps the attachment visible in the request instead of
// dropping the file silently after the user was told it was processed.
func attachmentPlaceholder(p Part) string {
	return fmt.Sprintf("[image attachment: %s, %d bytes]", p.MIME, len(p.Data))
}

// flattenParts renders a parts sequence as plain text for providers
// without an image channel. Image parts become bracketed placeholders so
// the model at least knows an attachment existed.
func flattenParts(parts []Part) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString("\n")
		}
		if p.IsImage() {
			b.WriteString(attachmentPlaceholder(p))
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}
