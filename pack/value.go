package pack

// Missing is the placeholder produced when unpack runs out of source bytes
// mid-directive. It is distinguishable from nil and from any decoded value.
type Missing struct{}

func (Missing) String() string { return "nil" }

// NoValue is the canonical Missing instance appended to unpack results.
var NoValue = Missing{}

// IsNoValue reports whether v is the no-value marker.
func IsNoValue(v any) bool {
	_, ok := v.(Missing)
	return ok
}
