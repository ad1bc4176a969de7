package sim

import "errors"

// Reject reasons returned by SubmitOrder. These are expected, modeled
// outcomes of user input; none of them mutates state.
var (
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrUnknownPair          = errors.New("unknown pair")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientPosition = errors.New("insufficient position")
)
