package models

import (
	"context"
	"encoding/base64"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicLLM implements Agent using Anthropic's Messages API.
type AnthropicLLM struct {
	Client    *anthropic.Client
	Model     string
	MaxTokens int
}

// NewAnthropicLLM constructs a client. It reads ANTHROPIC_API_KEY from the env.
func NewAnthropicLLM(model string) *AnthropicLLM {
	key := os.Getenv("ANTHROPIC_API_KEY")
	cl := anthropic.NewClient(
		anthropicopt.WithAPIKey(key),
	)
	return &AnthropicLLM{
		Client:    &cl,
		Model:     model,
		MaxTokens: 1024,
	}
}

func (a *AnthropicLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return a.GenerateWithParts(ctx, []Part{TextPart(prompt)})
}

// GenerateWithParts performs a single-turn completion with ordered text
// and image blocks and returns the concatenated reply text.
func (a *AnthropicLLM) GenerateWithParts(ctx context.Context, parts []Part) (string, error) {
	var blocks []anthropic.ContentBlockParamUnion
	for _, p := range parts {
		if p.IsImage() {
			mt := anthropicImageMIME(p.MIME)
			if mt == "" {
				blocks = append(blocks, anthropic.NewTextBlock(attachmentPlaceholder(p)))
				continue
			}
			encoded := base64.StdEncoding.EncodeToString(p.Data)
			blocks = append(blocks, anthropic.NewImageBlockBase64(mt, encoded))
			continue
		}
		blocks = append(blocks, anthropic.NewTextBlock(p.Text))
	}

	msg, err := a.Client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.Model),
		MaxTokens: int64(a.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cb := range msg.Content {
		if tb, ok := cb.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	return b.String(), nil
}

var _ Agent = (*AnthropicLLM)(nil)
