package ledger

// ErrorKind classifies ledger failures.
type ErrorKind int

const (
	// KindInvalidAmount rejects a deposit: negative, or past the int64 range.
	KindInvalidAmount ErrorKind = iota + 1
	// KindInsufficientFunds rejects a withdrawal: negative, or above the balance.
	KindInsufficientFunds
)

// String returns the fixed human-readable text for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidAmount:
		return "Invalid amount"
	case KindInsufficientFunds:
		return "Insufficient funds"
	default:
		return "Unknown ledger error"
	}
}

// Error is returned by Account operations that reject an amount.
type Error struct {
	Kind    ErrorKind
	Message string // optional, Kind.String() is used when empty
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.String()
}

// Is matches any *Error of the same kind, so errors.Is works against the
// sentinels regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	// ErrInvalidAmount matches deposit rejections.
	ErrInvalidAmount = &Error{Kind: KindInvalidAmount}
	// ErrInsufficientFunds matches withdraw rejections.
	ErrInsufficientFunds = &Error{Kind: KindInsufficientFunds}
)
