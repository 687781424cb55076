package series

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

const (
	// iterMarker introduces a progress line: "[iter N ... R jobs remaining".
	iterMarker = "[iter "
	// dropMarker signals that the run has finished dropping the previous
	// phase's jobs and is about to start a new phase.
	dropMarker = "finished dropping"
)

// Field positions on an iteration line: fields[1] is the iteration index,
// fields[7] the number of jobs remaining.
const (
	pbqffIterField      = 1
	pbqffRemainingField = 7
)

// parsePbqff reads the phase-segmented progress log of a QFF run into a
// single "jobs remaining" series. The parser is a two-state machine:
// normally each "[iter" line appends one (iteration, remaining) point; after
// a "finished dropping" line, the next "[iter" line first discards
// everything accumulated so far. A QFF runs in phases whose iteration
// counters restart from zero, and only the current phase's points belong on
// the live plot.
func parsePbqff(primary, _ string) ([]Series, error) {
	out := Series{Name: "jobs remaining"}
	didDrop := false

	scanner := bufio.NewScanner(strings.NewReader(primary))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, dropMarker) {
			didDrop = true
		}
		if !strings.HasPrefix(line, iterMarker) {
			continue
		}
		if didDrop {
			didDrop = false
			out.Points = out.Points[:0]
		}
		fields := strings.Fields(line)
		if len(fields) <= pbqffRemainingField {
			return nil, fmt.Errorf("pbqff iteration line %q has %d fields, want at least %d",
				line, len(fields), pbqffRemainingField+1)
		}
		iter, err := strconv.ParseFloat(fields[pbqffIterField], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse pbqff iteration index: %w", err)
		}
		remaining, err := strconv.ParseFloat(fields[pbqffRemainingField], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse pbqff remaining count: %w", err)
		}
		out.Points = append(out.Points, Point{X: iter, Y: remaining})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning pbqff output: %w", err)
	}

	return []Series{out}, nil
}
