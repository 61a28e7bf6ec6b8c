package main

import (
	"fmt"
	"os"
	"strings"
)

const (
	exitCodeSuccess = iota
	exitCodeError
)

func main() {
	rootCmd, err := newRootCmd().ExecuteC()
	if err == nil {
		os.Exit(exitCodeSuccess)
	}

	if usageErr(err) {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, rootCmd.UsageString())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCodeError)
}

// usageErr reports whether err comes from bad command line usage, in which
// case the usage text is printed as well.
func usageErr(err error) bool {
	if err == nil {
		return false
	}

	keywords := []string{
		"unknown command",
		"unknown flag",
		"unknown shorthand flag",
		"invalid argument",
	}

	cause := err.Error()
	for _, k := range keywords {
		if strings.Contains(cause, k) {
			return true
		}
	}
	return false
}
