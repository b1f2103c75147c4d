// Package provider constructs the Anthropic Messages API client and
// classifies its transport failures.
package provider

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// NewClient returns a client bound to the given API key. Transport behavior
// (timeouts, HTTP settings) is left to the SDK defaults.
func NewClient(apiKey string) *anthropic.Client {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c
}

const DefaultModel = anthropic.Model("claude-sonnet-4-6")
