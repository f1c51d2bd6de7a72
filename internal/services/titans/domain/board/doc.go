// Package board defines the fixed topology of the titans board: eighteen
// positions arranged in three hexagonal circuits, the weighted edges used for
// scoring, and the adjacency map used for movement and capture.
//
// Everything here is immutable package data. Occupancy is the only value type
// that changes during play, and it is copied by value so folds never share
// backing storage.
package board
