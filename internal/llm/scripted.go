package llm

import (
	"context"
	"sync"
)

// Scripted is an in-memory Provider that replays canned replies. It
// records every request it receives.
type Scripted struct {
	mu       sync.Mutex
	replies  []ScriptedReply
	requests []*CompletionRequest

	// Gate, when set, is received from before each reply is returned.
	Gate chan struct{}
}

// ScriptedReply is one canned outcome: Content or Err.
type ScriptedReply struct {
	Content string
	Err     error
}

func NewScripted(replies ...ScriptedReply) *Scripted {
	return &Scripted{replies: replies}
}

func (s *Scripted) Name() string { return "scripted" }

func (s *Scripted) Ping(context.Context) error { return nil }

func (s *Scripted) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	var reply ScriptedReply
	if len(s.replies) > 0 {
		reply = s.replies[0]
		s.replies = s.replies[1:]
	} else {
		reply = ScriptedReply{Err: ErrEmptyResponse}
	}
	gate := s.Gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if reply.Err != nil {
		return nil, reply.Err
	}
	return &CompletionResponse{Content: reply.Content, Model: req.Model}, nil
}

// Requests returns the requests received so far.
func (s *Scripted) Requests() []*CompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*CompletionRequest(nil), s.requests...)
}

// Calls returns the number of Complete calls.
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}
