package models

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

type OpenAILLM struct {
	Client *openai.Client
	Model  string
}

func NewOpenAILLM(model string) *OpenAILLM {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_KEY") // fallback
	}
	client := openai.NewClient(apiKey)
	return &OpenAILLM{Client: client, Model: model}
}

func (o *OpenAILLM) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateWithParts builds a MultiContent user message preserving part
// order. Images outside OpenAI's accepted set become text placeholders.
func (o *OpenAILLM) GenerateWithParts(ctx context.Context, parts []Part) (string, error) {
	hasImage := false
	for _, p := range parts {
		if p.IsImage() && openAIImageMIME(p.MIME) != "" {
			hasImage = true
			break
		}
	}
	// If no attachable media, fall back to a plain text message.
	if !hasImage {
		return o.Generate(ctx, flattenParts(parts))
	}

	var contentParts []openai.ChatMessagePart
	for _, p := range parts {
		if !p.IsImage() {
			contentParts = append(contentParts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeText,
				Text: p.Text,
			})
			continue
		}
		mt := openAIImageMIME(p.MIME)
		if mt == "" {
			contentParts = append(contentParts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeText,
				Text: attachmentPlaceholder(p),
			})
			continue
		}
		encoded := base64.StdEncoding.EncodeToString(p.Data)
		contentParts = append(contentParts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    fmt.Sprintf("data:%s;base64,%s", mt, encoded),
				Detail: openai.ImageURLDetailAuto,
			},
		})
	}

	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:         openai.ChatMessageRoleUser,
			MultiContent: contentParts,
		}},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Agent = (*OpenAILLM)(nil)
