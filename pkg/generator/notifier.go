package generator

import "log"

const (
	truncationWarning = "The generated timetables are truncated because the input is too broad. To ensure all results are considered, pin down some courses"
	overrideWarning   = "All available options for one or more course components are partially or fully blocked by your time constraints. The option with the least blocked time has been selected instead"
)

// Notifier is the sink for run-level events. Events are fire-and-forget and may repeat within a run;
// the last value reported for each flag is the outcome of the run
type Notifier interface {
	Truncated(truncated bool)
	Overridden(overridden bool)
	Warn(message string)
}

type logNotifier struct {
	logger *log.Logger
}

// NewLogNotifier reports raised flags and warnings through the logger
func NewLogNotifier(logger *log.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (notifier *logNotifier) Truncated(truncated bool) {
	if truncated {
		notifier.logger.Println("truncation: combination ceiling reached")
	}
}

func (notifier *logNotifier) Overridden(overridden bool) {
	if overridden {
		notifier.logger.Println("override: blocked time slots relaxed")
	}
}

func (notifier *logNotifier) Warn(message string) {
	notifier.logger.Printf("warning: %v", message)
}

type nopNotifier struct{}

func NopNotifier() Notifier {
	return nopNotifier{}
}

func (nopNotifier) Truncated(bool)  {}
func (nopNotifier) Overridden(bool) {}
func (nopNotifier) Warn(string)     {}
