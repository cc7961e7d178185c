package smallworld

import (
	"time"

	"github.com/rs/zerolog"
)

// Stats holds per-frame interpreter metrics.
type Stats struct {
	Instructions  int           // work-list entries executed
	PeakDepth     int           // deepest work-list length reached
	DrawCalls     int           // rectangle and text calls issued to the backend
	RectangleHits int           // rectangles containing the pointer
	Elapsed       time.Duration // traversal time; only measured in debug mode
}

// debugMaxWorkListDepth is the work-list length above which DeepTraversal
// reports true. Scenes built by the game stay well under it.
const debugMaxWorkListDepth = 256

// DeepTraversal reports whether the frame's work-list grew unusually deep,
// which usually means a builder is nesting wrappers per item instead of
// grouping them.
func (s Stats) DeepTraversal() bool {
	return s.PeakDepth > debugMaxWorkListDepth
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("instructions", s.Instructions).
		Int("peak_depth", s.PeakDepth).
		Int("draw_calls", s.DrawCalls).
		Int("hits", s.RectangleHits).
		Dur("traverse", s.Elapsed)
}
