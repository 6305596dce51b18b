package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/showcasehq/showcase/pkg/observability"
)

// logHooks logs observability events at debug level. Wired by serve so the
// long-running process exposes cache and refresh behavior without a metrics
// backend.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRefreshStart(_ context.Context, owner string) {
	h.logger.Debug("refresh started", "owner", owner)
}

func (h logHooks) OnRefreshComplete(_ context.Context, owner string, kept, dropped int, elapsed time.Duration, err error) {
	h.logger.Debug("refresh complete", "owner", owner, "kept", kept, "dropped", dropped, "elapsed", elapsed, "err", err)
}

func (h logHooks) OnFallback(_ context.Context, owner string, err error) {
	h.logger.Warn("serving fallback dataset", "owner", owner, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, layer string) {
	h.logger.Debug("cache hit", "layer", layer)
}

func (h logHooks) OnCacheMiss(_ context.Context, layer string) {
	h.logger.Debug("cache miss", "layer", layer)
}

func (h logHooks) OnCacheSet(_ context.Context, layer string, size int) {
	h.logger.Debug("cache set", "layer", layer, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("outbound request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, elapsed time.Duration) {
	h.logger.Debug("outbound response", "method", method, "host", host, "path", path, "status", status, "elapsed", elapsed)
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("outbound error", "method", method, "host", host, "path", path, "err", err)
}

// installLogHooks registers logHooks for all hook surfaces.
func installLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetAggregationHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}
