// Package guard provides a lightweight mechanism for enforcing that value
// types are created through their constructor functions rather than as
// zero-value struct literals.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when no custom error is supplied
// and the guarded value was not created through its constructor.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value type as properly constructed.
// Embed it as a field and initialize it with NewConstructorGuard inside the
// constructor; the zero value then fails Validate, catching struct literals
// that bypassed validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// Otherwise it returns customErr, falling back to ErrNotConstructed when
// customErr is nil.
func (g ConstructorGuard) Validate(customErr error) error {
	if g.isConstructed {
		return nil
	}
	if customErr != nil {
		return customErr
	}
	return ErrNotConstructed
}
