package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Input validation errors. Compare with errors.Is.
var (
	// ErrNegativeInput indicates a bill, waste volume or distance below zero.
	ErrNegativeInput = constError("input must not be negative")

	// ErrNonPositiveEfficiency indicates a fuel efficiency of zero or less.
	// The travel formula divides by this value.
	ErrNonPositiveEfficiency = constError("fuel efficiency must be greater than zero")

	// ErrFractionOutOfRange indicates a recycling fraction outside [0, 1].
	ErrFractionOutOfRange = constError("recycling fraction must be between 0 and 1")

	// ErrNonFinite indicates a NaN or infinite input.
	ErrNonFinite = constError("input must be a finite number")

	// ErrOverflow indicates finite inputs whose footprint is not finite.
	ErrOverflow = constError("footprint overflow: inputs are too large")
)
