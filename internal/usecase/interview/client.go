package interview

import "context"

type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type CompletionRequest struct {
	Model    string
	Messages []Message
}

type Message struct {
	Role string
	Text string
}
