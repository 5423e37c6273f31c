// Package pointio reads and writes coordinate pairs for ps71conv.
package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedLine is returned for a line that is not a coordinate pair.
var ErrMalformedLine = errors.New("malformed coordinate line")

// Pairs holds coordinates in x-then-y order as parallel slices.
type Pairs struct {
	X []float64
	Y []float64
}

// Len returns the number of pairs.
func (p Pairs) Len() int { return len(p.X) }

// Read parses one pair per line, separated by a comma, semicolon and/or
// whitespace. Blank lines and lines starting with '#' are skipped, and a first
// line without a single numeric field is taken as a header.
func Read(r io.Reader) (Pairs, error) {
	var pairs Pairs
	scanner := bufio.NewScanner(r)
	lineNo := 0
	first := true
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if first {
			first = false
			if isHeader(line) {
				continue
			}
		}

		x, y, err := parsePair(line)
		if err != nil {
			return Pairs{}, fmt.Errorf("line %d: %w", lineNo, err)
		}

		pairs.X = append(pairs.X, x)
		pairs.Y = append(pairs.Y, y)
	}
	if err := scanner.Err(); err != nil {
		return Pairs{}, fmt.Errorf("read points: %w", err)
	}
	return pairs, nil
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

// isHeader reports whether no field of line parses as a number.
func isHeader(line string) bool {
	for _, field := range splitFields(line) {
		if _, err := strconv.ParseFloat(field, 64); err == nil {
			return false
		}
	}
	return true
}

func parsePair(line string) (x, y float64, err error) {
	fields := splitFields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 values, got %d", ErrMalformedLine, len(fields))
	}
	x, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, fields[0])
	}
	y, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, fields[1])
	}
	return x, y, nil
}
