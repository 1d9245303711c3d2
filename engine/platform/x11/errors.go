package x11

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/jezek/xgb"
)

// eventSource is the non-blocking side of the X event queue.
type eventSource interface {
	PollForEvent() (xgb.Event, xgb.Error)
}

// logHandler is the default error handler: it logs and carries on, like Xlib's default
// handler would if it did not exit.
type logHandler struct {
	log *logger.Logger
}

func (h *logHandler) HandleError(err error) {
	ev := h.log.Warn().Err(err)
	if xerr, ok := err.(xgb.Error); ok {
		ev = ev.Uint16("seq", xerr.SequenceId()).Uint32("bad_id", xerr.BadId())
	}
	ev.Msg("unhandled X error")
}

// dispatch drains the queued events, handing every X error to h.
// Events are not selected on this connection, anything else is dropped.
//
// Returns:
//   - int: the number of errors delivered
func dispatch(src eventSource, h glx.ErrorHandler, log *logger.Logger) int {
	n := 0
	for {
		ev, xerr := src.PollForEvent()
		if ev == nil && xerr == nil {
			return n
		}
		if xerr != nil {
			h.HandleError(xerr)
			n++
			continue
		}
		log.Debug().Str("event", ev.String()).Msg("dropping event")
	}
}
