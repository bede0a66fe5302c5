package edges

import "errors"

// ErrVertexOutOfRange indicates a face references a vertex index with no
// position (index >= len(V)).
var ErrVertexOutOfRange = errors.New("edges: vertex index out of range")
