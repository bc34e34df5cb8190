// Package errorsx is a small language extension for the value, error return
// pattern and for error constants.
package errorsx

import (
	"fmt"
	"log"
)

// String useful wrapper for string constants as errors.
type String string

func (t String) Error() string {
	return string(t)
}

// Compact returns the first error in the set, if any.
func Compact(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// Log logs the error, if any, and otherwise ignores it.
func Log(err error) {
	if err == nil {
		return
	}

	if cause := log.Output(2, fmt.Sprintln(err)); cause != nil {
		log.Println(cause)
	}
}
