package keyword

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"time"
)

// WorkerBridge delegates keyword scoring to an external single-shot worker
// process. One subprocess is spawned per call and never reused; concurrent
// calls spawn concurrent independent processes.
//
// Protocol: a single JSON object {"text": ...} followed by a newline is
// written to the worker's stdin, stdin is closed, and the worker's entire
// stdout is read until exit and parsed as {"keywords": [...]}. Exit code 0
// signals success regardless of output content; anything else is a failure.
type WorkerBridge struct {
	Command string
	Args    []string
	Timeout time.Duration // bound on one round trip, zero disables it
}

// NewWorkerBridge creates a bridge spawning command with args per call
func NewWorkerBridge(command string, args []string, timeout time.Duration) *WorkerBridge {
	return &WorkerBridge{
		Command: command,
		Args:    args,
		Timeout: timeout,
	}
}

type workerRequest struct {
	Text string `json:"text"`
}

type workerResponse struct {
	Keywords []string `json:"keywords"`
}

// Extract runs one worker round trip and returns the ranked keywords.
// A missing keywords field in an otherwise valid response is treated as an
// empty ranking, not an error. All failures come back as *ExtractionError.
func (b *WorkerBridge) Extract(ctx context.Context, text string) ([]string, error) {
	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}

	request, err := json.Marshal(workerRequest{Text: text})
	if err != nil {
		return nil, &ExtractionError{Op: "encode request", Err: err}
	}

	cmd := exec.CommandContext(ctx, b.Command, b.Args...)
	cmd.Stdin = bytes.NewReader(append(request, '\n'))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Surface the deadline instead of the kill signal it caused
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &ExtractionError{Op: "run worker", Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	var response workerResponse
	if err := json.Unmarshal(stdout.Bytes(), &response); err != nil {
		return nil, &ExtractionError{Op: "decode response", Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	if response.Keywords == nil {
		return []string{}, nil
	}
	return response.Keywords, nil
}
