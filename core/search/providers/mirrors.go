// ABOUTME: Public SearxNG mirror adapter with load-spreading shuffle
// ABOUTME: Tries shuffled mirrors in turn with a bounded per-attempt timeout

package providers

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"serp-api/core/domain"
	coreerrors "serp-api/core/errors"
	"serp-api/core/interfaces"
)

// MirrorTimeout bounds each individual mirror attempt.
const MirrorTimeout = 8 * time.Second

// DefaultMirrors lists public SearxNG instances that expose the JSON API.
// The list is shuffled per call so load spreads across instances.
var DefaultMirrors = []string{
	"https://searx.be",
	"https://search.brave4u.com",
	"https://priv.au",
	"https://search.sapti.me",
	"https://searx.tiekoetter.com",
	"https://paulgo.io",
}

// Mirrors is the adapter that walks a list of public SearxNG mirrors.
// A mirror that errors, times out, or returns zero results is skipped and
// the next one is tried; the adapter as a whole fails only when every
// mirror has been exhausted.
type Mirrors struct {
	mirrors []string
	timeout time.Duration
	deps    interfaces.Dependencies

	// shuffle is swappable for deterministic tests
	shuffle func([]string)
}

// NewMirrors creates the public-mirror adapter. A nil or empty mirror list
// falls back to DefaultMirrors.
func NewMirrors(mirrors []string, deps interfaces.Dependencies) *Mirrors {
	if len(mirrors) == 0 {
		mirrors = DefaultMirrors
	}
	return &Mirrors{
		mirrors: mirrors,
		timeout: MirrorTimeout,
		deps:    deps,
		shuffle: func(s []string) {
			rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		},
	}
}

// Name returns the provider identifier
func (p *Mirrors) Name() string {
	return NameMirrors
}

// Search tries each mirror in shuffled order until one returns results
func (p *Mirrors) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	shuffled := make([]string, len(p.mirrors))
	copy(shuffled, p.mirrors)
	p.shuffle(shuffled)

	var lastErr error
	for _, mirror := range shuffled {
		resp, err := p.tryMirror(ctx, mirror, query)
		if err != nil {
			lastErr = err
			p.logSkip(mirror, err)
			continue
		}
		if len(resp.Organic) == 0 {
			lastErr = fmt.Errorf("mirror %s: %w", mirror, coreerrors.ErrNoResults)
			p.logSkip(mirror, lastErr)
			continue
		}
		resp.Provider = p.Name()
		return resp, nil
	}

	if lastErr == nil {
		lastErr = coreerrors.ErrNoResults
	}
	return nil, coreerrors.WrapError(lastErr, "all mirrors exhausted")
}

func (p *Mirrors) tryMirror(ctx context.Context, mirror string, query domain.SearchQuery) (*domain.SearchResponse, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return searxngFetch(attemptCtx, p.deps.HTTPClient, mirror, query)
}

func (p *Mirrors) logSkip(mirror string, err error) {
	if p.deps.Logger == nil {
		return
	}
	p.deps.Logger.Warn("Mirror skipped", map[string]interface{}{
		"mirror": mirror,
		"error":  err.Error(),
	})
}
