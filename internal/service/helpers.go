package service

import (
	"fmt"
	"time"
)

var timeNow = func() time.Time { return time.Now().UTC() }

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("catalog validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
