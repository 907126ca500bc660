package launch

import (
	"fmt"
	"strings"
)

// Profile selects which optional launch parameters are resolved
type Profile struct {
	Name     string
	Headless bool
	Debug    bool
}

var (
	// ProfileVirtual resolves the headless tri-state and never sends debug
	ProfileVirtual = Profile{Name: "virtual", Headless: true}

	// ProfileDebug resolves the debug flag and leaves headless to the server
	ProfileDebug = Profile{Name: "debug", Debug: true}
)

// ParseProfile maps a profile name to a Profile, defaulting to ProfileVirtual
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "virtual", "headless":
		return ProfileVirtual, nil
	case "debug":
		return ProfileDebug, nil
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
}
