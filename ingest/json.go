package ingest

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/valveplan/core"
)

// ParseJSON reads a JSON listing.
func ParseJSON(data []byte) (*core.Graph, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("ParseJSON: invalid document: %w", ErrSyntax)
	}

	root := gjson.ParseBytes(data)
	list := root
	if !root.IsArray() {
		list = root.Get("locations")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("ParseJSON: locations is not an array: %w", ErrSyntax)
	}

	var (
		locs []core.Location
		err  error
		pos  int
	)
	list.ForEach(func(_, v gjson.Result) bool {
		var loc core.Location
		loc, err = parseLocation(v)
		if err != nil {
			err = fmt.Errorf("ParseJSON: locations[%d]: %w", pos, err)
			return false
		}
		locs = append(locs, loc)
		pos++

		return true
	})
	if err != nil {
		return nil, err
	}

	return freeze("ParseJSON", locs)
}

func parseLocation(v gjson.Result) (core.Location, error) {
	if !v.IsObject() {
		return core.Location{}, ErrSyntax
	}
	id := v.Get("id")
	if id.Type != gjson.String {
		return core.Location{}, fmt.Errorf("id: %w", ErrSyntax)
	}
	loc := core.Location{ID: id.String()}

	if rate := v.Get("rate"); rate.Exists() {
		if rate.Type != gjson.Number || rate.Float() != float64(rate.Int()) {
			return core.Location{}, fmt.Errorf("%q rate: %w", loc.ID, ErrSyntax)
		}
		loc.Rate = int(rate.Int())
	}

	nbs := v.Get("neighbors")
	if nbs.Exists() && !nbs.IsArray() {
		return core.Location{}, fmt.Errorf("%q neighbors: %w", loc.ID, ErrSyntax)
	}
	var bad bool
	nbs.ForEach(func(_, n gjson.Result) bool {
		if n.Type != gjson.String {
			bad = true
			return false
		}
		loc.Neighbors = append(loc.Neighbors, n.String())

		return true
	})
	if bad {
		return core.Location{}, fmt.Errorf("%q neighbors: %w", loc.ID, ErrSyntax)
	}

	return loc, nil
}
