// Package commands implements the subcommands of the salad tool.
package commands

import "errors"

// errUsage is returned when a command's flags could not be parsed. The
// flag package has already reported the problem.
var errUsage = errors.New("invalid usage")

// IsUsage reports whether err is a command line usage error.
func IsUsage(err error) bool {
	return errors.Is(err, errUsage)
}
