/*
Package maze generates rectangular perfect mazes.

A maze is described by a Topology: for every pair of grid-adjacent cells it records
whether the passage between them is open. Generation uses a randomized depth-first
traversal (recursive backtracker) that carves a spanning tree out of the grid, so there is
exactly one simple path between any two cells.

Randomness is always supplied by the caller through a Source, which makes generation
reproducible: the same dimensions, start cell and seed produce the same Topology.

The package also provides move validation, path solving, a spanning-tree check and an
ASCII rendering of a Topology.
*/
package maze
