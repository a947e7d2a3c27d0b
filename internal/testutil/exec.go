package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/goto-project/internal/cmdexec"
)

// Response represents a pre-configured command response for FakeCommander.
type Response struct {
	Output []byte
	Err    error
	// ExitCode is returned by Interactive when Err is nil.
	ExitCode int
}

// FakeCommander returns pre-configured responses for testing.
// Responses are keyed by "name arg1 arg2 ..." format.
// If no exact match is found, it tries prefix matching.
type FakeCommander struct {
	// Responses maps command strings to their responses.
	// Key format: "command arg1 arg2" (e.g., "/bin/zsh -c", "/bin/bash -c exit 0")
	Responses map[string]Response

	// Calls records all commands that were executed, in order.
	Calls []string

	// InteractiveArgs records the raw argument vectors passed to Interactive, in order.
	InteractiveArgs [][]string

	// DefaultResponse is returned when no matching response is found.
	// If nil, an error is returned for unmatched commands.
	DefaultResponse *Response
}

// NewFakeCommander creates a FakeCommander with an empty response map.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		Responses: make(map[string]Response),
	}
}

// Register adds a response for the given command key.
func (c *FakeCommander) Register(key string, output string, err error) {
	c.Responses[key] = Response{
		Output: []byte(output),
		Err:    err,
	}
}

// RegisterExit adds an interactive response that exits with the given code.
func (c *FakeCommander) RegisterExit(key string, code int) {
	c.Responses[key] = Response{ExitCode: code}
}

// Run looks up the command in Responses and returns the matching response.
func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	resp, err := c.lookup(name, args)
	if err != nil {
		return nil, err
	}
	return resp.Output, resp.Err
}

// Interactive records the call and returns the matching response's exit code.
// Output of the matching response is written to streams.Out when present.
func (c *FakeCommander) Interactive(_ context.Context, streams cmdexec.Streams, name string, args ...string) (int, error) {
	c.InteractiveArgs = append(c.InteractiveArgs, append([]string{name}, args...))

	resp, err := c.lookup(name, args)
	if err != nil {
		return -1, err
	}
	if resp.Err != nil {
		return -1, resp.Err
	}
	if len(resp.Output) > 0 && streams.Out != nil {
		if _, err := streams.Out.Write(resp.Output); err != nil {
			return -1, err
		}
	}
	return resp.ExitCode, nil
}

func (c *FakeCommander) lookup(name string, args []string) (Response, error) {
	fullCmd := name
	if len(args) > 0 {
		fullCmd = name + " " + strings.Join(args, " ")
	}

	c.Calls = append(c.Calls, fullCmd)

	// Exact match first.
	if resp, ok := c.Responses[fullCmd]; ok {
		return resp, nil
	}

	// Try prefix matching (longest prefix wins).
	bestKey := ""
	for key := range c.Responses {
		if strings.HasPrefix(fullCmd, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		return c.Responses[bestKey], nil
	}

	// Default response.
	if c.DefaultResponse != nil {
		return *c.DefaultResponse, nil
	}

	return Response{}, fmt.Errorf("FakeCommander: no response registered for %q", fullCmd)
}

// Called returns true if a command matching the given prefix was executed.
func (c *FakeCommander) Called(prefix string) bool {
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// CallCount returns the number of times a command matching the given prefix was executed.
func (c *FakeCommander) CallCount(prefix string) int {
	count := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}
	return count
}

var _ cmdexec.Commander = (*FakeCommander)(nil)
