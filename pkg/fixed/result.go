package fixed

// Result is a two-variant success/failure outcome used for value-domain
// validation. Range failures are expected runtime conditions and travel
// through Result; API contract violations elsewhere in the module surface
// as error returns instead.
type Result[T any] struct {
	value T
	err   string
	ok    bool
}

// Ok wraps a valid value.
func Ok[T any](v T) Result[T] { return Result[T]{value: v, ok: true} }

// Fail wraps a failure message.
func Fail[T any](msg string) Result[T] { return Result[T]{err: msg} }

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool { return r.ok }

// Value returns the held value; the zero value on failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure message; empty on success.
func (r Result[T]) Err() string { return r.err }
