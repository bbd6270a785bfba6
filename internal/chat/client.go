// Package chat talks to the external language-model API behind the
// assistant. The collaborator is a black box: one request carrying the
// transcript and the fixed system prompt, one text reply back. Failures
// are absorbed into fixed placeholder strings; there is no retry and no
// client-side timeout, cancellation follows the request context only.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/iliyamo/library-portal/internal/model"
)

const systemPrompt = `You are a friendly and highly knowledgeable library assistant for the Institute of Engineering and Technology DAVV. Your name is 'Librarian AI'. Your primary roles are:
1.  **Book Recommendations:** When a user asks for book suggestions, proactively ask clarifying questions to understand their needs better. Inquire about their specific interests, current coursework, or the subjects they are studying to provide highly relevant and personalized book recommendations.
2.  **Problem Solving:** If a user asks a technical or academic question, provide a clear, concise, and accurate explanation, similar to a helpful tutor.
3.  **Website Navigation:** If a user asks how to do something on the website (e.g., 'how to find books', 'where are the ebooks'), guide them clearly.
4.  **Tone:** Maintain a helpful, encouraging, and slightly formal tone appropriate for an academic setting. Do not go off-topic.
`

// Fixed replies used when the collaborator cannot answer.
const (
	OfflineReply  = "I'm sorry, my AI capabilities are currently offline. Please check the API key configuration."
	FallbackReply = "Sorry, I encountered an error. Please try again later."
)

// Greeting opens every new conversation on the client side.
const Greeting = "Hello! I'm Librarian AI. How can I assist you with your studies or finding books today?"

// Client calls a Gemini-style generateContent endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient builds a client. An empty apiKey disables the assistant: Reply
// then always returns OfflineReply.
func NewClient(apiKey, model, baseURL string) *Client {
	return &Client{apiKey: apiKey, model: model, baseURL: baseURL, http: http.DefaultClient}
}

// Wire types for the generateContent call.
type part struct {
	Text string `json:"text"`
}
type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}
type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Reply sends the prior turns plus the new user message and returns the
// assistant's answer. Any transport, status or decode failure collapses to
// FallbackReply so the conversation can continue.
func (c *Client) Reply(ctx context.Context, history []model.ChatMessage, message string) string {
	if c.apiKey == "" {
		return OfflineReply
	}

	contents := make([]content, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Sender == model.ChatSenderBot {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: msg.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	body, err := json.Marshal(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		Contents:          contents,
	})
	if err != nil {
		return FallbackReply
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return FallbackReply
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("chat: request failed: %v", err)
		return FallbackReply
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("chat: unexpected status %d", resp.StatusCode)
		return FallbackReply
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return FallbackReply
	}
	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return FallbackReply
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return FallbackReply
	}
	return out.Candidates[0].Content.Parts[0].Text
}
