package country

import (
	"errors"
	"fmt"

	dErrors "isocountry/pkg/domain-errors"
)

// Sentinels for each failure kind. Every error returned by this package wraps
// exactly one of them inside a coded dErrors.Error, so both
// errors.Is(err, ErrInvalidCode) and dErrors.HasCode(err, dErrors.CodeInvalidInput)
// work.
var (
	// ErrCodeNotFound means the two code tables disagree on a symbolic name.
	// It signals a data defect, never bad caller input.
	ErrCodeNotFound    = errors.New("alpha code not found")
	ErrInvalidCode     = errors.New("invalid alpha code")
	ErrInvalidCodeKind = errors.New("invalid alpha code implementation")
	ErrEmptyName       = errors.New("empty country name")
	ErrInvalidTimezone = errors.New("invalid timezone")
)

func codeNotFound(name string) error {
	return dErrors.Wrap(ErrCodeNotFound, dErrors.CodeInvariantViolation,
		fmt.Sprintf("alpha code with name <%s> not found", name))
}

func invalidCode(code string) error {
	return dErrors.Wrap(ErrInvalidCode, dErrors.CodeInvalidInput,
		fmt.Sprintf("alpha code <%s> is invalid", code))
}

func invalidCodeKind(code AlphaCode) error {
	return dErrors.Wrap(ErrInvalidCodeKind, dErrors.CodeInvariantViolation,
		fmt.Sprintf("alpha code implementation <%T> is invalid", code))
}

func emptyName() error {
	return dErrors.Wrap(ErrEmptyName, dErrors.CodeInvalidInput, "country name cannot be empty")
}

func invalidTimezone(identifier string) error {
	return dErrors.Wrap(ErrInvalidTimezone, dErrors.CodeInvalidInput,
		fmt.Sprintf("timezone <%s> is invalid", identifier))
}
