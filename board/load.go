package board

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gridloop/slitherloop/core"
)

// ErrMalformed wraps a board-file parse failure with the offending line
// number (1-indexed) and a human-readable reason.
type ErrMalformed struct {
	Line   int
	Reason string
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("board: line %d: %s", e.Line, e.Reason)
}

// Load reads a Slitherlink board from path: Y lines, each exactly X
// characters after trailing-whitespace is stripped, drawn from the
// alphabet '0'-'3' (a clue) or '.' (blank). X and Y are derived from the
// file; the first line fixes X, and every later line must match it.
func Load(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a board from r using the same rules as Load.
func Parse(r io.Reader) (*Board, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rows = append(rows, strings.TrimRight(scanner.Text(), " \t\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("board: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, &ErrMalformed{Line: 0, Reason: "file is empty"}
	}

	x := len(rows[0])
	y := len(rows)
	b, err := New(x, y)
	if err != nil {
		return nil, err
	}

	for r, line := range rows {
		if len(line) != x {
			return nil, &ErrMalformed{Line: r + 1, Reason: fmt.Sprintf("expected %d characters, got %d", x, len(line))}
		}
		for c, ch := range line {
			clue, err := parseClue(ch)
			if err != nil {
				return nil, &ErrMalformed{Line: r + 1, Reason: fmt.Sprintf("column %d: %s", c, err)}
			}
			_ = b.set(r, c, clue)
		}
	}

	return b, nil
}

func parseClue(ch rune) (core.Clue, error) {
	switch ch {
	case '.':
		return core.Blank, nil
	case '0', '1', '2', '3':
		return core.Clue(ch - '0'), nil
	default:
		return core.Blank, fmt.Errorf("disallowed character %q", ch)
	}
}
