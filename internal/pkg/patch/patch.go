package patch

// Coalesce dereferences ptr when set, falling back otherwise. Partial-update
// handlers use it to fold optional request fields onto current entity values.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
