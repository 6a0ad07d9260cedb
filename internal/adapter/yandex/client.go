package yandex

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Morwran/yagpt"

	"daily-interviewer/internal/usecase/interview"
)

// IAM tokens live for up to 12 hours; refresh well before that.
const iamTokenTTL = time.Hour

// Client sends interviews to YandexGPT. The requested model is ignored:
// the folder's YandexGPT Lite model answers every request.
type Client struct {
	oauthToken string
	ya         yagpt.YaGPTFace

	mu        sync.Mutex
	iamToken  string
	refreshed time.Time
	now       func() time.Time
}

func NewClient(oauthToken, folderID string) (*Client, error) {
	if oauthToken == "" || folderID == "" {
		return nil, errors.New("yandex provider needs an oauth token and a folder id")
	}

	ya, err := yagpt.NewYagpt(folderID)
	if err != nil {
		return nil, fmt.Errorf("init yagpt: %w", err)
	}

	return &Client{
		oauthToken: oauthToken,
		ya:         ya,
		now:        time.Now,
	}, nil
}

func (c *Client) Complete(ctx context.Context, req interview.CompletionRequest) (string, error) {
	token, err := c.token()
	if err != nil {
		return "", err
	}

	resp, err := c.ya.CompletionWithCtx(ctx, token, toYaMessages(req.Messages))
	if err != nil {
		return "", fmt.Errorf("yagpt completion: %w", err)
	}
	if resp == nil || len(resp.Alternatives) == 0 {
		return "", errors.New("yagpt returned empty response")
	}

	content := resp.Alternatives[0].Message.Content
	if content == "" {
		return "", errors.New("yagpt returned empty content")
	}
	return content, nil
}

// Model is the name reported for saved interviews.
func (c *Client) Model() string {
	return yagpt.YaModelLite
}

func (c *Client) token() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.iamToken != "" && c.now().Sub(c.refreshed) < iamTokenTTL {
		return c.iamToken, nil
	}

	iam, err := yagpt.NewYaIam(c.oauthToken)
	if err != nil {
		return "", fmt.Errorf("init yandex iam: %w", err)
	}
	resp, err := iam.Create()
	if err != nil {
		return "", fmt.Errorf("create iam token: %w", err)
	}

	c.iamToken = resp.IamToken
	c.refreshed = c.now()
	return c.iamToken, nil
}

func toYaMessages(msgs []interview.Message) []yagpt.Message {
	out := make([]yagpt.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, yagpt.Message{
			Role:    m.Role,
			Content: m.Text,
		})
	}
	return out
}
