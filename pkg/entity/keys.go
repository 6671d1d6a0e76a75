// pkg/entity/keys.go
package entity

// Key identifies one of the ship's control inputs
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyCount // number of keys, keep last
)

// Valid reports whether the key is one of the defined control inputs
func (k Key) Valid() bool {
	return k >= 0 && k < KeyCount
}

// String returns a human-readable name for the key
func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBackward:
		return "backward"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}
