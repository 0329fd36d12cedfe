package mat

import "errors"

// ErrSingular is returned by the Inverse functions when the determinant
// is zero (or indistinguishable from zero at the evaluated precision).
// Match with errors.Is.
var ErrSingular = errors.New("mat: matrix is singular")
