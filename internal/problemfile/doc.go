// Package problemfile loads search problems from YAML files and solves
// them with the search engine.
//
// A file describes either a graph or a grid:
//
//	name: city
//	kind: graph
//	algorithm: dijkstra
//	graph:
//	  directed: true
//	  start: A
//	  goal: D
//	  edges:
//	    - {from: A, to: B, weight: 1}
//	    - {from: B, to: D, weight: 2}
//	limits:
//	  max_expansions: 1000
//	  timeout: 2s
//
//	name: maze
//	kind: grid
//	algorithm: astar
//	grid:
//	  connectivity: 8
//	  threshold: 1
//	  start: [0, 0]
//	  goal: [2, 2]
//	  cells:
//	    - [1, 1, 0]
//	    - [0, 1, 0]
//	    - [0, 1, 1]
//
// A graph section may also generate its topology with the builder package
// (generate: {topology: grid, rows: 10, cols: 10}); listed edges are added
// on top. Graph edges without weights make an unweighted graph in which
// every step costs 1. Grid cells below threshold are walls; entering a cell
// costs its value.
package problemfile
