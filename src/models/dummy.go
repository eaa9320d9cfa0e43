package models

import (
	"context"
	"fmt"
	"strings"
)

// DummyLLM is a lightweight model implementation useful for local
// testing without API calls. It echoes the prompt it was given.
type DummyLLM struct {
	Prefix string
}

func NewDummyLLM(prefix string) *DummyLLM {
	if strings.TrimSpace(prefix) == "" {
		prefix = "Dummy response:"
	}
	return &DummyLLM{Prefix: prefix}
}

func (d *DummyLLM) Generate(_ context.Context, prompt string) (string, error) {
	return fmt.Sprintf("%s %s", d.Prefix, prompt), nil
}

func (d *DummyLLM) GenerateWithParts(_ context.Context, parts []Part) (string, error) {
	return fmt.Sprintf("%s %s", d.Prefix, flattenParts(parts)), nil
}

var _ Agent = (*DummyLLM)(nil)
