package lsmc

import "fmt"

// DegeneracyError reports a zero-range cross section: every path carries the
// same price, so the affine rescale to [-1,1] is undefined.
type DegeneracyError struct {
	Value float64
}

func (e DegeneracyError) Error() string {
	return fmt.Sprintf("degenerate cross section: all paths at %v", e.Value)
}

// SingularityError reports a singular or non-positive-definite
// normal-equations matrix in the continuation regression.
type SingularityError struct {
	Order int
}

func (e SingularityError) Error() string {
	return fmt.Sprintf("singular normal equations for basis order %d", e.Order)
}
