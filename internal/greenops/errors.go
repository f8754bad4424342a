package greenops

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for equivalency calculations. Compare with errors.Is.
var (
	// ErrNegativeValue indicates a negative footprint. A net-negative total
	// is a valid footprint but has no meaningful real-world equivalent.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow indicates a NaN or infinite value.
	ErrCalculationOverflow = constError("calculation overflow")
)
