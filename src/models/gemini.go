package models

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ---------------------------- Google Gemini ----------------------------------

type GeminiLLM struct {
	Client *genai.Client
	Model  string
}

func NewGeminiLLM(ctx context.Context, model string) (*GeminiLLM, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("missing GOOGLE_API_KEY or GEMINI_API_KEY")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &GeminiLLM{Client: client, Model: model}, nil
}

func (g *GeminiLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateWithParts(ctx, []Part{TextPart(prompt)})
}

// geminiParts maps parts to the wire shapes Gemini accepts. Images with
// a media type outside the inline-blob set become text placeholders
// rather than vanishing from the request.
func geminiParts(parts []Part) []genai.Part {
	gp := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.IsImage() {
			mt := sanitizeForGemini(p.MIME)
			if mt == "" {
				gp = append(gp, genai.Text(attachmentPlaceholder(p)))
				continue
			}
			gp = append(gp, genai.Blob{MIMEType: mt, Data: p.Data})
			continue
		}
		gp = append(gp, genai.Text(p.Text))
	}
	return gp
}

// GenerateWithParts sends one multimodal request. Text parts go through
// as-is; image parts are attached inline when Gemini accepts the media
// type.
func (g *GeminiLLM) GenerateWithParts(ctx context.Context, parts []Part) (string, error) {
	model := g.Client.GenerativeModel(g.Model)

	gp := geminiParts(parts)
	if len(gp) == 0 {
		return "", errors.New("gemini: empty prompt")
	}

	resp, err := model.GenerateContent(ctx, gp...)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: empty response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String(), nil
}

var _ Agent = (*GeminiLLM)(nil)
