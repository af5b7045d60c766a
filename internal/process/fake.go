package process

import (
	"context"
	"fmt"
	"sync"
)

// FakeRunner is a scripted Runner for tests in dependent packages. Responses
// are keyed by full command line or, failing that, by command name. Unknown
// commands report ErrNotFound.
type FakeRunner struct {
	mu        sync.Mutex
	Responses map[string]FakeResponse
	Calls     []Cmd
}

// FakeResponse is the scripted outcome for one command name.
type FakeResponse struct {
	Result *Result
	Err    error
}

// NewFakeRunner returns an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: map[string]FakeResponse{}}
}

// On registers the outcome for a command name or full command line.
func (f *FakeRunner) On(name string, res *Result, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[name] = FakeResponse{Result: res, Err: err}
	return f
}

// Run implements Runner.
func (f *FakeRunner) Run(_ context.Context, c Cmd) (*Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, c)

	resp, ok := f.Responses[c.String()]
	if !ok {
		resp, ok = f.Responses[c.Name]
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", c.Name, ErrNotFound)
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	if resp.Result == nil {
		return &Result{}, nil
	}
	out := *resp.Result
	if !c.Discard && c.Stdout != nil && out.Stdout != "" {
		fmt.Fprint(c.Stdout, out.Stdout)
	}
	return &out, nil
}

// CallLines returns the recorded invocations as command lines.
func (f *FakeRunner) CallLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.String()
	}
	return lines
}
