// SPDX-License-Identifier: MIT
// Package: teampath/builder
//
// parse.go - textual topology strings for the command line.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a topology string:
//
//	complete:N   path:N   cycle:N   star:N   wheel:N
//	grid:RxC     random:N:P
//
// Sizes are validated when the topology is built, not here.
func Parse(expr string) (Topology, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(expr), ":")
	name = strings.ToLower(name)

	switch name {
	case "complete", "path", "cycle", "star", "wheel":
		n, err := strconv.Atoi(args)
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): node count: %w", expr, ErrUnknownTopology)
		}
		switch name {
		case "complete":
			return Complete(n), nil
		case "path":
			return Path(n), nil
		case "cycle":
			return Cycle(n), nil
		case "star":
			return Star(n), nil
		default:
			return Wheel(n), nil
		}

	case "grid":
		rs, cs, ok := strings.Cut(strings.ToLower(args), "x")
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if !ok || err1 != nil || err2 != nil {
			return nil, fmt.Errorf("Parse(%q): want grid:RxC: %w", expr, ErrUnknownTopology)
		}
		return Grid(rows, cols), nil

	case "random":
		ns, ps, ok := strings.Cut(args, ":")
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(ps, 64)
		if !ok || err1 != nil || err2 != nil {
			return nil, fmt.Errorf("Parse(%q): want random:N:P: %w", expr, ErrUnknownTopology)
		}
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("Parse(%q): %w", expr, ErrUnknownTopology)
}
