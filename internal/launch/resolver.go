package launch

import (
	"strconv"
	"strings"
)

// Lookup returns the value bound to an environment variable and whether it was set.
// config.Environment satisfies it.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// ParseTruthy reports whether raw is one of "true", "1" or "yes", ignoring case.
// Every other input is false.
func ParseTruthy(raw string) bool {
	switch lowerASCII(raw) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// lowerASCII folds only A-Z. Non-ASCII letters such as U+0130 must not
// collapse onto an ASCII keyword.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// ResolvePort parses CAMOUFOX_PORT, defaulting to 7777 when unset
func ResolvePort(raw string, set bool) (int, error) {
	if !set {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ConfigurationError{
			Variable: EnvPort,
			Value:    raw,
			Expected: "integer",
			Err:      err,
		}
	}
	return port, nil
}

// ResolveHeadless returns the virtual mode for an unset variable or "virtual"
// in any case, otherwise the truthy value of raw
func ResolveHeadless(raw string, set bool) Headless {
	if !set {
		raw = HeadlessVirtual
	}
	if lowerASCII(raw) == HeadlessVirtual {
		return VirtualHeadless()
	}
	return BoolHeadless(ParseTruthy(raw))
}

func ResolveMainWorldEval(raw string, set bool) bool {
	if !set {
		raw = "True"
	}
	return ParseTruthy(raw)
}

func ResolveWsPath(raw string, set bool) string {
	if !set {
		return DefaultWsPath
	}
	return raw
}

func ResolveDebug(raw string, set bool) bool {
	if !set {
		raw = "False"
	}
	return ParseTruthy(raw)
}

// Resolve builds a LaunchConfig from an environment snapshot.
// Only the port can fail; the remaining fields are coerced.
func Resolve(env Lookup, profile Profile) (*LaunchConfig, error) {
	port, err := ResolvePort(env.Lookup(EnvPort))
	if err != nil {
		return nil, err
	}

	cfg := &LaunchConfig{
		Port:          port,
		MainWorldEval: ResolveMainWorldEval(env.Lookup(EnvMainWorld)),
		Host:          Host,
		WsPath:        ResolveWsPath(env.Lookup(EnvWsPath)),
	}

	if profile.Headless {
		headless := ResolveHeadless(env.Lookup(EnvHeadless))
		cfg.Headless = &headless
	}
	if profile.Debug {
		debug := ResolveDebug(env.Lookup(EnvDebug))
		cfg.Debug = &debug
	}

	return cfg, nil
}
