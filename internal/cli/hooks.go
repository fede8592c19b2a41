package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridsort/pkg/observability"
)

// logHooks reports engine events to the CLI logger. Gesture traffic is
// logged at debug level only.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.GridHooks   = (*logHooks)(nil)
	_ observability.RenderHooks = (*logHooks)(nil)
)

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnGestureStart(gesture, item string, order int) {
	h.logger.Debug("grab", "gesture", shortID(gesture), "item", item, "order", order)
}

func (h *logHooks) OnSwap(gesture, item, other string, from, to int) {
	h.logger.Debug("swap", "gesture", shortID(gesture), "item", item, "with", other, "from", from, "to", to)
}

func (h *logHooks) OnGestureEnd(gesture, item string, order, moves int, d time.Duration) {
	h.logger.Debug("release", "gesture", shortID(gesture), "item", item, "order", order, "moves", moves, "held", d.Round(time.Millisecond))
}

func (h *logHooks) OnSettle(item string, order int) {
	h.logger.Debug("settled", "item", item, "order", order)
}

func (h *logHooks) OnRenderStart(format string, items int) {
	h.logger.Debug("render", "format", format, "items", items)
}

func (h *logHooks) OnRenderComplete(format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

// shortID trims a gesture UUID to its first block.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
