package ratelimit

import (
	"strings"
)

// MatchEndpoint finds the tier config for a request path and method. Exact
// matches win; configs whose path ends in "/" act as prefixes, which is how
// "/jobs/" covers "/jobs/{id}" and "/jobs/{id}/extract". Nil means the
// caller's global default applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never throttled; monitors poll it aggressively.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
