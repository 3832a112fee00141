package gc

import "go.uber.org/zap"

// logf emits a debug-level diagnostic through the configured logger. It
// is a no-op when the embedder hasn't configured one (New defaults to a
// no-op logger), mirroring the teacher's GC_PROFILE instrumentation being
// compiled out by default but costing nothing to call unconditionally.
func (g *GC) logf(format string, args ...any) {
	g.log.Debugf(format, args...)
}

func defaultLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
