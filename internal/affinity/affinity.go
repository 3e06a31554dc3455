// Package affinity pins the calling goroutine to a single CPU so that a
// timed pass is not migrated between cores while it runs.
package affinity

import "errors"

var (
	// ErrUnsupported is returned on platforms without thread affinity control.
	ErrUnsupported = errors.New("affinity: not supported on this platform")

	// ErrNoCPU is returned when the current affinity mask is empty.
	ErrNoCPU = errors.New("affinity: no CPU in current mask")
)
