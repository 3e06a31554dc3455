//go:build !linux

package affinity

// Pin is not available on this platform and always returns ErrUnsupported.
func Pin() (cpu int, restore func(), err error) {
	return -1, nil, ErrUnsupported
}
