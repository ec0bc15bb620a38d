package gas

import "errors"

// ErrShapeMismatch indicates vector-valued conditions of different
// lengths that cannot broadcast against each other.
var ErrShapeMismatch = errors.New("gas: vector fields have mismatched lengths")
