package errs

import "strings"

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitize keeps error messages on a single log line.
func sanitize(s string) string {
	return newlineReplacer.Replace(s)
}
