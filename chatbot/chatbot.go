// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chatbot

import (
	"context"
	"errors"
	"strings"

	"github.com/danielhkuo/neurocare/mood"
)

// Greeting opens every conversation
const Greeting = "Hello! I'm your AI mental health companion. I'm here to listen, support, and help you work through your feelings. How are you doing today?"

// QuickSuggestions are one-tap prompts offered under the chat box
var QuickSuggestions = []string{
	"I feel sad",
	"I feel stressed",
	"I'm feeling anxious",
	"I need motivation",
	"I'm having trouble sleeping",
	"I feel overwhelmed",
}

var ErrEmptyMessage = errors.New("message is required")

// Responder produces a reply to one user message.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// Canned answers from a fixed topic table without any network access.
type Canned struct {
	Rand mood.Rand
}

func NewCanned(r mood.Rand) *Canned {
	if r == nil {
		r = mood.DefaultRand
	}
	return &Canned{Rand: r}
}

func (c *Canned) Reply(_ context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	return mood.Pick(c.Rand, replies[TopicFor(message)]), nil
}

// TopicFor returns the first topic whose keywords appear in message,
// or TopicDefault
func TopicFor(message string) string {
	lower := strings.ToLower(message)
	for _, t := range topicOrder {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return t.name
			}
		}
	}
	return TopicDefault
}

// ChatClient is the slice of the backend client Remote needs
type ChatClient interface {
	Chat(ctx context.Context, message string) (string, error)
}

// Remote forwards messages to the external chat endpoint.
type Remote struct {
	client ChatClient
}

func NewRemote(client ChatClient) *Remote {
	return &Remote{client: client}
}

func (r *Remote) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	return r.client.Chat(ctx, strings.TrimSpace(message))
}
