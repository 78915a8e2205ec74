package canvas

import (
	"io"
	"log/slog"
)

// SyncEvent records the outcome of one synchronizer operation.
type SyncEvent struct {
	Op        string
	ProcessID string
	Err       error
}

// Observer receives synchronizer events. Non-fatal failures, such as a
// position persist that the canvas keeps regardless, only surface here.
type Observer interface {
	OnSync(event SyncEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnSync(SyncEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes synchronizer events to w.
func NewLogObserver(w io.Writer) Observer {
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnSync(event SyncEvent) {
	if event.Err != nil {
		o.logger.Error("canvas_sync", "op", event.Op, "process", event.ProcessID, "error", event.Err.Error())
		return
	}
	o.logger.Info("canvas_sync", "op", event.Op, "process", event.ProcessID)
}
