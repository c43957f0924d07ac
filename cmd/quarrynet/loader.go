// File: loader.go
// Role: plain-text network loader for the CLI.
//
// Format, one record per line:
//
//	<vertex count>
//	<quarry count>
//	<edge count>
//	<vertex ids, space separated>
//	<quarry id> <capacity>          (quarry count lines)
//	<u> <v> <x1,y1> <x2,y2> ...     (edge count lines)
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roadquarry/quarrynet/geometry"
	"github.com/roadquarry/quarrynet/quarryconf"
	"github.com/roadquarry/quarrynet/quarrynet"
)

var errShortInput = errors.New("quarrynet: unexpected end of input")

// parseNetwork reads the plain-text description from r and builds the
// network with cfg.
func parseNetwork(r io.Reader, cfg quarryconf.Config) (*quarrynet.Network, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	nextLine := func() (string, error) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				return line, nil
			}
		}
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errShortInput
	}

	nextInt := func() (int, error) {
		line, err := nextLine()
		if err != nil {
			return 0, err
		}
		return strconv.Atoi(line)
	}

	nVertices, err := nextInt()
	if err != nil {
		return nil, fmt.Errorf("vertex count: %w", err)
	}
	nQuarries, err := nextInt()
	if err != nil {
		return nil, fmt.Errorf("quarry count: %w", err)
	}
	nEdges, err := nextInt()
	if err != nil {
		return nil, fmt.Errorf("edge count: %w", err)
	}

	line, err := nextLine()
	if err != nil {
		return nil, fmt.Errorf("vertex ids: %w", err)
	}
	fields := strings.Fields(line)
	if len(fields) != nVertices {
		return nil, fmt.Errorf("vertex ids: expected %d ids, got %d", nVertices, len(fields))
	}
	vertices := make([]quarrynet.VertexID, 0, nVertices)
	for _, f := range fields {
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("vertex id %q: %w", f, err)
		}
		vertices = append(vertices, quarrynet.VertexID(id))
	}

	capacities := make(map[quarrynet.VertexID]float64, nQuarries)
	for i := 0; i < nQuarries; i++ {
		line, err := nextLine()
		if err != nil {
			return nil, fmt.Errorf("quarry %d: %w", i, err)
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, fmt.Errorf("quarry %d: expected %q, got %q", i, "<id> <capacity>", line)
		}
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("quarry %d id: %w", i, err)
		}
		capacity, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("quarry %d capacity: %w", i, err)
		}
		capacities[quarrynet.VertexID(id)] = capacity
	}

	edges := make([]quarrynet.EdgeInput, 0, nEdges)
	for i := 0; i < nEdges; i++ {
		line, err := nextLine()
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		in, err := parseEdge(line)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, in)
	}

	return quarrynet.NewNetwork(vertices, capacities, edges, cfg)
}

func parseEdge(line string) (quarrynet.EdgeInput, error) {
	parts := strings.Fields(line)
	if len(parts) < 4 {
		return quarrynet.EdgeInput{}, fmt.Errorf("expected %q, got %q", "<u> <v> <x,y> <x,y> ...", line)
	}
	u, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return quarrynet.EdgeInput{}, fmt.Errorf("endpoint %q: %w", parts[0], err)
	}
	v, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return quarrynet.EdgeInput{}, fmt.Errorf("endpoint %q: %w", parts[1], err)
	}

	pl := make(geometry.Polyline, 0, len(parts)-2)
	for _, coord := range parts[2:] {
		xy := strings.Split(coord, ",")
		if len(xy) != 2 {
			return quarrynet.EdgeInput{}, fmt.Errorf("coordinate %q: expected x,y", coord)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return quarrynet.EdgeInput{}, fmt.Errorf("coordinate %q: %w", coord, err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return quarrynet.EdgeInput{}, fmt.Errorf("coordinate %q: %w", coord, err)
		}
		pl = append(pl, geometry.Point{X: x, Y: y})
	}

	return quarrynet.EdgeInput{
		U:        quarrynet.VertexID(u),
		V:        quarrynet.VertexID(v),
		Polyline: pl,
	}, nil
}
