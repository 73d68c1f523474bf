// Package scenario loads grid maps and route queries from YAML files.
//
//	name: two rooms
//	rows:
//	  - "....#...."
//	  - "....#...."
//	  - "........."
//	start: {node: "0,0"}
//	goal:  {position: [8, 0, 2]}
//	queries:
//	  - start: {node: "0,2"}
//	    goal:  {node: "8,0"}
//
// Rows use '#' for blocked cells and any other character for walkable ones.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/navpath/gridgraph"
	"github.com/katalvlaran/navpath/pathfinder"
)

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("scenario: invalid scenario")

var validate = validator.New()

// Endpoint names a node, a world position, or both.
type Endpoint struct {
	Node     string      `yaml:"node" validate:"required_without=Position"`
	Position *[3]float64 `yaml:"position" validate:"required_without=Node"`
}

// Query is one start/goal pair.
type Query struct {
	Start Endpoint `yaml:"start"`
	Goal  Endpoint `yaml:"goal"`
}

// Scenario is a map plus the queries to run on it.
type Scenario struct {
	Name    string    `yaml:"name"`
	Rows    []string  `yaml:"rows" validate:"required,min=1,dive,required"`
	Start   *Endpoint `yaml:"start"`
	Goal    *Endpoint `yaml:"goal"`
	Queries []Query   `yaml:"queries" validate:"dive"`
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if (s.Start == nil) != (s.Goal == nil) {
		return nil, fmt.Errorf("%w: start and goal must be given together", ErrInvalid)
	}
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &s, nil
}

// Grid builds the grid described by Rows.
func (s *Scenario) Grid(opts gridgraph.GridOptions) (*gridgraph.GridGraph, error) {
	return gridgraph.FromRows(s.Rows, opts)
}

// Requests returns the start/goal pair, if any, followed by Queries.
func (s *Scenario) Requests() []pathfinder.Request {
	var out []pathfinder.Request
	if s.Start != nil && s.Goal != nil {
		out = append(out, pathfinder.Request{Start: s.Start.Marker(), Goal: s.Goal.Marker()})
	}
	for _, q := range s.Queries {
		out = append(out, pathfinder.Request{Start: q.Start.Marker(), Goal: q.Goal.Marker()})
	}
	return out
}

// Marker converts the endpoint.
func (e Endpoint) Marker() pathfinder.Marker {
	if e.Position == nil {
		return pathfinder.AtNode(e.Node)
	}
	return pathfinder.AtNodeOrPosition(e.Node, mgl64.Vec3(*e.Position))
}
