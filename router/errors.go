package router

import "errors"

var (
	// ErrEmptyEmbedding is returned when the embedding has no nodes.
	ErrEmptyEmbedding = errors.New("router: embedding has no nodes")

	// ErrNodeNotInEmbedding is returned when source or target is not a
	// node ID present in the embedding.
	ErrNodeNotInEmbedding = errors.New("router: node not present in embedding")
)
