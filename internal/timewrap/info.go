// Package timewrap times each request passing through a pipeline.Router and logs
// one formatted line per completed request.
package timewrap

import "time"

// State is the lifecycle position of an Info.
type State int

const (
	Unstarted State = iota
	Started
	Completed
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Started:
		return "started"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Info holds the start and end time of one request. A zero time means unset.
// Info is owned by a single request and is not safe for concurrent mutation.
type Info struct {
	start time.Time
	end   time.Time
}

// MarkStart records the current time as the start, unless a start is already set.
func (i *Info) MarkStart() {
	i.StartAt(time.Now())
}

// MarkEnd records the current time as the end, unless an end is already set.
func (i *Info) MarkEnd() {
	i.EndAt(time.Now())
}

// StartAt sets the start time to t if it is unset.
func (i *Info) StartAt(t time.Time) {
	if i.start.IsZero() {
		i.start = t
	}
}

// EndAt sets the end time to t if it is unset.
func (i *Info) EndAt(t time.Time) {
	if i.end.IsZero() {
		i.end = t
	}
}

// StartTime returns the recorded start, or the zero time if unset.
func (i *Info) StartTime() time.Time { return i.start }

// EndTime returns the recorded end, or the zero time if unset.
func (i *Info) EndTime() time.Time { return i.end }

// Duration returns the elapsed milliseconds between start and end, or 0 when
// either is missing.
func (i *Info) Duration() float64 {
	if i.start.IsZero() || i.end.IsZero() {
		return 0
	}
	return float64(i.end.Sub(i.start)) / float64(time.Millisecond)
}

// State reports Completed once an end is recorded.
func (i *Info) State() State {
	switch {
	case !i.end.IsZero():
		return Completed
	case !i.start.IsZero():
		return Started
	default:
		return Unstarted
	}
}
