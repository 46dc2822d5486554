// ABOUTME: Default configuration values for the serplib client
// ABOUTME: Unset dependencies are materialized after options are applied

package serplib

import (
	"serp-api/core/search"
	"serp-api/infrastructure/cache/memory"
	stdhttp "serp-api/infrastructure/http/standard"
)

// defaultConfig returns the default client configuration. Cache and
// HTTPClient stay nil here because their construction depends on other
// options (TTL, timeout); New materializes them after options run.
func defaultConfig() Config {
	return Config{
		CacheTTL: search.DefaultCacheTTL,
		Timeout:  stdhttp.DefaultTimeout,
	}
}

// materialize fills in any dependency the options left unset
func (c *Config) materialize() {
	if c.Cache == nil {
		c.Cache = memory.NewMemoryCache(c.CacheTTL)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = stdhttp.NewStandardHTTPClient(c.Timeout)
	}
}
