package mst

import "errors"

// Sentinel errors for MST computation.
var (
	// ErrInvalidGraph is returned when the graph is nil, directed, or
	// unweighted; spanning trees are defined on undirected weighted graphs.
	ErrInvalidGraph = errors.New("mst: requires undirected, weighted graph")

	// ErrEmptyRoot is returned by Prim when no start vertex is given.
	ErrEmptyRoot = errors.New("mst: empty root vertex")

	// ErrDisconnected is returned when the graph has no spanning tree
	// covering every vertex.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)
