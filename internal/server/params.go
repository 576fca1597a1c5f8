package server

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/robherley/game-of-life/internal/render"
)

// Query parameters accepted by the render and create endpoints. All
// are optional; the engine defaults apply when absent.

func parseTextOptions(q url.Values) (render.TextOptions, error) {
	opts := render.DefaultTextOptions()

	var err error
	if opts.Alive, err = charParam(q, "alive", opts.Alive); err != nil {
		return opts, err
	}
	if opts.Dead, err = charParam(q, "dead", opts.Dead); err != nil {
		return opts, err
	}
	if opts.Separator, err = charParam(q, "separator", opts.Separator); err != nil {
		return opts, err
	}
	return opts, nil
}

func parseSVGOptions(q url.Values) (render.SVGOptions, error) {
	opts := render.DefaultSVGOptions()

	var err error
	if opts.CellSize, err = intParam(q, "cell_size", opts.CellSize); err != nil {
		return opts, err
	}
	if opts.StrokeWidth, err = intParam(q, "stroke_width", opts.StrokeWidth); err != nil {
		return opts, err
	}
	if v := q.Get("stroke_color"); v != "" {
		opts.StrokeColor = v
	}
	if v := q.Get("fill_color"); v != "" {
		opts.FillColor = v
	}
	return opts, nil
}

// parseNext reads the ?next flag. A bare "?next" counts as true.
func parseNext(q url.Values) (bool, error) {
	if !q.Has("next") {
		return false, nil
	}
	v := q.Get("next")
	if v == "" {
		return true, nil
	}
	next, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("next must be a boolean, got %q", v)
	}
	return next, nil
}

func charParam(q url.Values, key string, def byte) (byte, error) {
	if !q.Has(key) {
		return def, nil
	}
	v := q.Get(key)
	if len(v) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", key, v)
	}
	return v[0], nil
}

func intParam(q url.Values, key string, def int) (int, error) {
	if !q.Has(key) {
		return def, nil
	}
	n, err := strconv.Atoi(q.Get(key))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, q.Get(key))
	}
	return n, nil
}
