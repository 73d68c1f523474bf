package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/navpath/astar"
)

// ErrInvalid wraps every validation failure returned by Parse, Load and Validate.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(admissibleHeuristic, Config{})
	return v
}

// admissibleHeuristic rejects Search.Admissible when the heuristic can rate a
// single grid step above what the step costs.
func admissibleHeuristic(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	if c.Search.Admissible && c.overestimatesStep() {
		sl.ReportError(c.Search.Admissible, "Search.Admissible", "Admissible", "admissible", c.Search.Heuristic)
	}
}

// overestimatesStep compares the weighted estimate of an orthogonal step and,
// with 8-connectivity, a diagonal step against the configured edge cost.
func (c Config) overestimatesStep() bool {
	cs := c.Grid.CellSize
	var estimate func(axes float64) float64
	switch c.Search.Heuristic {
	case "manhattan", "l1":
		estimate = func(axes float64) float64 { return axes * cs }
	case "euclidean", "l2":
		estimate = func(axes float64) float64 { return math.Sqrt(axes) * cs }
	default:
		return false
	}
	cost := func(axes float64) float64 {
		if c.Search.EdgeCost == "distance" {
			return math.Sqrt(axes) * cs
		}
		return 1
	}
	w := c.Search.Weight
	if w == 0 {
		w = 1
	}

	axes := []float64{1}
	if c.Grid.Connectivity == 8 {
		axes = append(axes, 2)
	}
	for _, a := range axes {
		if w*estimate(a) > cost(a)+1e-9 {
			return true
		}
	}
	return false
}

// Config is the root of the configuration file.
type Config struct {
	Search   SearchConfig   `json:"search" yaml:"search"`
	Resolver ResolverConfig `json:"resolver" yaml:"resolver"`
	Follow   FollowConfig   `json:"follow" yaml:"follow"`
	Grid     GridConfig     `json:"grid" yaml:"grid"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// SearchConfig configures the route search.
type SearchConfig struct {
	// Heuristic is one of manhattan (l1), euclidean (l2) or zero (none).
	Heuristic string `json:"heuristic" yaml:"heuristic" validate:"required,oneof=manhattan euclidean zero l1 l2 none"`
	// Admissible selects early termination when the goal is popped. Validate
	// rejects it when the heuristic overestimates a step of the grid section.
	Admissible bool `json:"admissible" yaml:"admissible"`
	// Weight scales the heuristic; 0 and 1 leave it unchanged.
	Weight float64 `json:"weight" yaml:"weight" validate:"gte=0"`
	// MaxIterations caps frontier pops per search.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations" validate:"gt=0"`
	// EdgeCost is unit or distance.
	EdgeCost string `json:"edge_cost" yaml:"edge_cost" validate:"oneof=unit distance"`
}

// ResolverConfig configures marker resolution and batching.
type ResolverConfig struct {
	// Tolerance is the nearest-node radius; 0 uses the graph cell size.
	Tolerance float64 `json:"tolerance" yaml:"tolerance" validate:"gte=0"`
	// MaxConcurrency bounds batch workers; 0 uses GOMAXPROCS.
	MaxConcurrency int `json:"max_concurrency" yaml:"max_concurrency" validate:"gte=0"`
}

// FollowConfig configures route following.
type FollowConfig struct {
	ArrivalRadius float64 `json:"arrival_radius" yaml:"arrival_radius" validate:"gt=0"`
}

// GridConfig configures graph generation from grids.
type GridConfig struct {
	CellSize          float64    `json:"cell_size" yaml:"cell_size" validate:"gt=0"`
	Connectivity      int        `json:"connectivity" yaml:"connectivity" validate:"oneof=4 8"`
	WalkableThreshold int        `json:"walkable_threshold" yaml:"walkable_threshold"`
	Origin            [3]float64 `json:"origin" yaml:"origin"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Heuristic:     "manhattan",
			Admissible:    true,
			MaxIterations: astar.DefaultMaxIterations,
			EdgeCost:      "unit",
		},
		Follow: FollowConfig{ArrivalRadius: 2.0},
		Grid: GridConfig{
			CellSize:          1,
			Connectivity:      4,
			WalkableThreshold: 1,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays data onto Default and validates the result. Unknown keys
// are an error; an empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Logger builds a logger writing to w in the configured format and level.
func (c LogConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c LogConfig) level() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
