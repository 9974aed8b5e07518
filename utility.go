package mlog

import (
	"fmt"
	"strings"
)

// fmtErrorf wrapper, ensures consistent "mlog: " error prefix
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "mlog: ") {
		format = "mlog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}
