package pgrepos

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core"
)

// class 57: operator intervention (admin_shutdown, crash_shutdown, cannot_connect_now, ...)
const operatorInterventionClass = "57"

// wrapErr wraps `err` with `msg`. When postgres reports that it is going away,
// a core shutdown error is returned instead so that the app stops gracefully.
func wrapErr(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == operatorInterventionClass {
		return core.NewShutdownError(msg + ": " + pqErr.Message)
	}
	return errors.Wrap(err, msg)
}
