// Package config loads navpath settings from YAML.
//
// Load and Parse start from Default, overlay the file, reject unknown keys
// and validate the result. The typed sections convert into options for the
// astar, pathfinder, follow and gridgraph packages, and LogConfig builds the
// process logger.
//
// Example file:
//
//	search:
//	  heuristic: euclidean
//	  admissible: true
//	  max_iterations: 5000
//	resolver:
//	  tolerance: 1.5
//	follow:
//	  arrival_radius: 0.75
//	grid:
//	  cell_size: 2
//	  connectivity: 8
//	log:
//	  level: debug
//	  format: json
package config
