package launch

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Environment variables read by the resolver
const (
	EnvPort      = "CAMOUFOX_PORT"
	EnvHeadless  = "CAMOUFOX_HEADLESS"
	EnvMainWorld = "CAMOUFOX_USE_MAIN_WORLD"
	EnvWsPath    = "CAMOUFOX_WS_PATH"
	EnvDebug     = "CAMOUFOX_DEBUG"
)

const (
	DefaultPort   = 7777
	DefaultWsPath = "camoufox"

	// Host is always bound on every interface
	Host = "0.0.0.0"

	// HeadlessVirtual runs the browser on a virtual display
	HeadlessVirtual = "virtual"
)

// Headless is the tri-state headless launch parameter: either the virtual
// display mode or an explicit boolean.
type Headless struct {
	Virtual bool
	Enabled bool
}

// VirtualHeadless returns the virtual display mode
func VirtualHeadless() Headless {
	return Headless{Virtual: true}
}

// BoolHeadless returns an explicit visible/invisible mode
func BoolHeadless(enabled bool) Headless {
	return Headless{Enabled: enabled}
}

func (h Headless) String() string {
	if h.Virtual {
		return HeadlessVirtual
	}
	return strconv.FormatBool(h.Enabled)
}

// MarshalJSON encodes the virtual mode as "virtual" and anything else as a bool
func (h Headless) MarshalJSON() ([]byte, error) {
	if h.Virtual {
		return json.Marshal(HeadlessVirtual)
	}
	return json.Marshal(h.Enabled)
}

// LaunchConfig holds the resolved launch parameters.
// Headless and Debug are nil when the active profile does not carry them.
type LaunchConfig struct {
	Port          int       `json:"port"`
	Headless      *Headless `json:"headless,omitempty"`
	MainWorldEval bool      `json:"main_world_eval"`
	Host          string    `json:"host"`
	WsPath        string    `json:"ws_path"`
	Debug         *bool     `json:"debug,omitempty"`
}

// Kwargs returns the keyword arguments for camoufox.server.launch_server.
// Optional parameters are left out rather than sent as None.
func (c *LaunchConfig) Kwargs() map[string]any {
	kwargs := map[string]any{
		"main_world_eval": c.MainWorldEval,
		"port":            c.Port,
		"host":            c.Host,
		"ws_path":         c.WsPath,
	}
	if c.Headless != nil {
		kwargs["headless"] = *c.Headless
	}
	if c.Debug != nil {
		kwargs["debug"] = *c.Debug
	}
	return kwargs
}

// Endpoint returns the websocket URL clients connect to on this machine
func (c *LaunchConfig) Endpoint() string {
	return fmt.Sprintf("ws://%s:%d/%s", c.Host, c.Port, c.WsPath)
}

// ProbeAddr returns a dialable address for the server port.
// The wildcard host is not dialable everywhere so loopback is used instead.
func (c *LaunchConfig) ProbeAddr() string {
	host := c.Host
	if host == Host {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("%s:%d", host, c.Port)
}
