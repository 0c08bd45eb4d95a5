package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valveplan/core"
)

var (
	// ErrSyntax indicates input that does not follow the listing format.
	ErrSyntax = errors.New("ingest: syntax error")

	// ErrEmpty indicates a listing without any location.
	ErrEmpty = errors.New("ingest: no locations")
)

// lineRE matches one text listing line; singular and plural wording both occur.
var lineRE = regexp.MustCompile(`^Valve\s+(\S+)\s+has\s+flow\s+rate=(\d+);\s+tunnels?\s+leads?\s+to\s+valves?\s+(.+)$`)

// ParseLine parses a single listing line into a Location.
func ParseLine(line string) (core.Location, error) {
	m := lineRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return core.Location{}, fmt.Errorf("%q: %w", line, ErrSyntax)
	}
	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return core.Location{}, fmt.Errorf("%q: rate: %w", line, ErrSyntax)
	}

	var nbs []string
	for _, f := range strings.Split(m[3], ",") {
		if f = strings.TrimSpace(f); f != "" {
			nbs = append(nbs, f)
		}
	}
	if len(nbs) == 0 {
		return core.Location{}, fmt.Errorf("%q: no neighbors: %w", line, ErrSyntax)
	}

	return core.Location{ID: m[1], Rate: rate, Neighbors: nbs}, nil
}

// ParseText reads a text listing. Blank lines are skipped; errors carry the
// 1-based line number.
func ParseText(r io.Reader) (*core.Graph, error) {
	var locs []core.Location

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		loc, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("ParseText: line %d: %w", line, err)
		}
		locs = append(locs, loc)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseText: %w", err)
	}

	return freeze("ParseText", locs)
}

func freeze(op string, locs []core.Location) (*core.Graph, error) {
	if len(locs) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	g, err := core.NewGraph(locs, core.WithSymmetrize())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}
