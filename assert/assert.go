package assert

import (
	"github.com/amikey/igl/logging"
)

// T panics through the error logger if check is false.
// Used for programmer errors that a well-formed caller never hits,
// as opposed to runtime failures which are returned as errors.
func T(check bool, format string, args ...any) {

	if check {
		return
	}

	logging.ErrLog.Panicf(format, args...)
}
