package sqlite

import (
	"fmt"
	"strings"

	"github.com/maneomkar369/saheli-connect-2.0/pkg/repository"
)

// mapConstraintErr translates driver constraint violations into the public
// sentinel errors so handlers can branch with errors.Is. The sqlite driver
// does not export typed errors for these, so matching the message text is the
// portable check.
func mapConstraintErr(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, msg)
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return fmt.Errorf("%w: %s", repository.ErrForeignKey, msg)
	}

	return err
}
