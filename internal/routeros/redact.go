package routeros

import "regexp"

// secretToken matches key=value tokens whose value is key material or a
// password, quoted or not.
var secretToken = regexp.MustCompile(`([\w.-]*(?:private-key|pre-?shared-key|passphrase|password)=)("(?:[^"\\]|\\.)*"|\S+)`)

// Redact masks secret values in a command line before it is logged.
func Redact(command string) string {
	return secretToken.ReplaceAllString(command, `${1}"***"`)
}
