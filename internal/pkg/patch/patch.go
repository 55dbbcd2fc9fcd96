package patch

// Coalesce returns *p when p is non-nil, otherwise fallback.
// Used for partial-update requests where omitted fields keep current values.
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
