package helpers

// Nullable converts an optional field into a query argument, nil when unset.
func Nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
