package errors

import (
	"fmt"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
)

type Process func()

// SafeRunSync runs the input process and converts any panic it raises
// into an error. This is used when invoking callbacks provided by the
// consumer: a misbehaving callback should never bring down the chat
// connection machinery.
func SafeRunSync(proc Process) (err error) {
	func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				if asErr, ok := recovered.(error); ok {
					err = asErr
				} else {
					err = errors.New(fmt.Sprintf("%v", recovered))
				}
			}
		}()

		proc()

	}()
	return
}
