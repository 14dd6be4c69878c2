// Package wsl runs the external commands mqlpath depends on: user and
// distribution lookups, Wine detection, and the wsl.exe pass-through used
// when a Windows host delegates to WSL.
package wsl

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/rjdinis/mqlpath/internal/logging"
)

// WSLExecutable is the Windows launcher commands are passed through.
const WSLExecutable = "wsl.exe"

// Runner executes an external command and returns its standard output.
type Runner interface {
	Output(name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return out, fmt.Errorf("%w: %s", err, msg)
		}
		return out, err
	}
	return out, nil
}

type cachedResult struct {
	out string
	err error
}

// Client handles external commands
type Client struct {
	logger *logging.Logger
	runner Runner
	viaWSL bool

	mu    sync.Mutex
	cache map[string]cachedResult
}

// NewClient creates a new client. When viaWSL is true, commands run through
// wsl.exe so they execute inside the default distribution.
func NewClient(logger *logging.Logger, runner Runner, viaWSL bool) *Client {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{
		logger: logger,
		runner: runner,
		viaWSL: viaWSL,
		cache:  make(map[string]cachedResult),
	}
}

// ViaWSL reports whether commands are passed through wsl.exe
func (c *Client) ViaWSL() bool { return c.viaWSL }

// Command returns the command line to execute, prefixed with wsl.exe when
// commands are passed through WSL
func (c *Client) Command(name string, args ...string) (string, []string) {
	if c.viaWSL {
		return WSLExecutable, append([]string{name}, args...)
	}
	return name, args
}

// Run executes a command, through WSL if enabled, and returns its output
// without the trailing newline
func (c *Client) Run(name string, args ...string) (string, error) {
	name, args = c.Command(name, args...)
	return c.RunHost(name, args...)
}

// RunHost executes a command on the host, never through WSL
func (c *Client) RunHost(name string, args ...string) (string, error) {
	c.logger.Debug("Running: %s", commandLine(name, args))

	out, err := c.runner.Output(name, args...)
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", name, err)
	}
	return strings.TrimRight(decodeOutput(out), "\r\n"), nil
}

// RunCached is Run with the result memoized per command line for the
// lifetime of the client. Failures are cached too.
func (c *Client) RunCached(name string, args ...string) (string, error) {
	key := commandLine(c.Command(name, args...))

	c.mu.Lock()
	if r, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return r.out, r.err
	}
	c.mu.Unlock()

	out, err := c.Run(name, args...)

	c.mu.Lock()
	c.cache[key] = cachedResult{out: out, err: err}
	c.mu.Unlock()

	return out, err
}

// HasWine checks if the 32-bit wine launcher is installed
func (c *Client) HasWine() bool {
	return c.which("wine")
}

// HasWine64 checks if the 64-bit wine launcher is installed
func (c *Client) HasWine64() bool {
	return c.which("wine64")
}

func (c *Client) which(program string) bool {
	out, err := c.RunCached("which", program)
	if err != nil {
		c.logger.Debug("%s not found: %v", program, err)
		return false
	}
	return strings.TrimSpace(out) != ""
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
