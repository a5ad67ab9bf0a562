package pipeline

import (
	"time"
)

// LoadStats summarizes one pass over an input file
type LoadStats struct {
	Lines    int
	Records  int
	Duration time.Duration
}

func (s LoadStats) Fields() map[string]interface{} {
	return map[string]interface{}{
		"lines":       s.Lines,
		"records":     s.Records,
		"duration_ms": s.Duration.Milliseconds(),
	}
}
