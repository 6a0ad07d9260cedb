package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openaiapi "github.com/sashabaranov/go-openai"

	"daily-interviewer/internal/usecase/interview"
)

// Client talks to any OpenAI-compatible chat completion endpoint. With the
// default base URL that is OpenRouter.
type Client struct {
	api *openaiapi.Client
}

type headerTransport struct {
	rt      http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cl := req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			cl.Header.Set(k, v)
		}
	}
	return t.rt.RoundTrip(cl)
}

// NewClient returns a client for baseURL. referer and title are sent as
// the HTTP-Referer and X-Title attribution headers when set.
func NewClient(apiKey, baseURL, referer, title string) *Client {
	cfg := openaiapi.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}

	h := http.Header{}
	if referer != "" {
		h.Set("HTTP-Referer", referer)
	}
	if title != "" {
		h.Set("X-Title", title)
	}
	if len(h) > 0 {
		cfg.HTTPClient = &http.Client{Transport: headerTransport{rt: http.DefaultTransport, headers: h}}
	}

	return &Client{
		api: openaiapi.NewClientWithConfig(cfg),
	}
}

func (c *Client) Complete(ctx context.Context, req interview.CompletionRequest) (string, error) {
	apiReq := openaiapi.ChatCompletionRequest{
		Model:    req.Model,
		Stream:   false,
		Messages: toAPIMessages(req.Messages),
	}

	resp, err := c.api.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", errors.New("chat completion returned empty content")
	}

	return content, nil
}

func toAPIMessages(msgs []interview.Message) []openaiapi.ChatCompletionMessage {
	res := make([]openaiapi.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, openaiapi.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}
	return res
}
