package series

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Column positions of the three tracked values on a qualifying semp line,
// counted across the whole line (the iteration count in column 0 is the
// qualifying check, not a value).
var sempColumns = [3]int{1, 3, 5}

// Names of the semp series, in output order. The first three come from the
// primary optimization log, "test" from the companion test-set file.
var sempNames = [3]string{"norm", "rmsd", "max"}

// parseSemp reads the whitespace-delimited numeric columns of a semp
// optimization log. A line qualifies when its first field is composed
// entirely of digits; each qualifying line contributes one point to each of
// the norm, rmsd, and max series, with x being a zero-based counter of
// qualifying lines. Lines that don't qualify are skipped and don't advance
// the counter.
//
// The auxiliary test-set file contributes a fourth series: x is the first
// field and y the last field of each line, taken literally.
func parseSemp(primary, aux string) ([]Series, error) {
	out := make([]Series, 3, 4)
	for i, name := range sempNames {
		out[i].Name = name
	}

	n := 0
	scanner := bufio.NewScanner(strings.NewReader(primary))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || !allDigits(fields[0]) {
			continue
		}
		if len(fields) <= sempColumns[len(sempColumns)-1] {
			return nil, fmt.Errorf("semp line %q has %d fields, want at least %d",
				scanner.Text(), len(fields), sempColumns[len(sempColumns)-1]+1)
		}
		for i, col := range sempColumns {
			v, err := strconv.ParseFloat(fields[col], 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse semp column %d: %w", col, err)
			}
			out[i].Points = append(out[i].Points, Point{X: float64(n), Y: v})
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning semp output: %w", err)
	}

	test, err := parseSempTest(aux)
	if err != nil {
		return nil, err
	}
	return append(out, test), nil
}

// parseSempTest parses the companion test-set file. Unlike the primary log,
// both coordinates are literal values from the line: first field is x, last
// field is y.
func parseSempTest(aux string) (Series, error) {
	test := Series{Name: "test"}
	scanner := bufio.NewScanner(strings.NewReader(aux))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Series{}, fmt.Errorf("failed to parse test-set x value: %w", err)
		}
		y, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return Series{}, fmt.Errorf("failed to parse test-set y value: %w", err)
		}
		test.Points = append(test.Points, Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return Series{}, fmt.Errorf("error scanning test-set file: %w", err)
	}
	return test, nil
}

// allDigits reports whether s is non-empty and made up entirely of digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
