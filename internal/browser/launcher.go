package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/camoufox-launcher/internal/launch"
)

// Bootstrap is run by the Python interpreter with the JSON encoded keyword
// arguments as its only argument.
const Bootstrap = `import json, sys
from camoufox.server import launch_server
launch_server(**json.loads(sys.argv[1]))
`

const DefaultPython = "python3"

var (
	// ErrUnknownMode indicates that a launch mode name is not recognised
	ErrUnknownMode = errors.New("unknown launch mode")
)

// Launcher hands a resolved configuration to the camoufox server.
// Launch blocks for as long as the server runs.
type Launcher interface {
	Launch(ctx context.Context, cfg *launch.LaunchConfig) error
}

// Mode selects how the server process is started
type Mode string

const (
	// ModeSupervise runs the server as a child process
	ModeSupervise Mode = "supervise"
	// ModeExec replaces the launcher process with the server
	ModeExec Mode = "exec"
)

// ParseMode maps a mode name to a Mode, defaulting to ModeSupervise
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeSupervise:
		return ModeSupervise, nil
	case ModeExec:
		return ModeExec, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

// Command returns the argv that starts the server with python
func Command(python string, cfg *launch.LaunchConfig) ([]string, error) {
	kwargs, err := json.Marshal(cfg.Kwargs())
	if err != nil {
		return nil, fmt.Errorf("failed to encode launch arguments: %w", err)
	}
	return []string{python, "-c", Bootstrap, string(kwargs)}, nil
}
