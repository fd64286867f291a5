package keys

import (
	"math/rand"
	"regexp"
	"strings"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 8

// joinCodeRegex matches a normalized join code.
var joinCodeRegex = regexp.MustCompile("^[A-Z0-9]{8}$")

// NewJoinCode creates a short alphanumeric code for joining sessions.
func NewJoinCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}

// NormalizeJoinCode upper-cases and trims a client-supplied code.
func NormalizeJoinCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidJoinCode reports whether a normalized code has the expected shape.
func ValidJoinCode(s string) bool {
	return joinCodeRegex.MatchString(s)
}

// SnapshotKey builds the singleflight key used to dedupe concurrent
// snapshot reads for one session.
func SnapshotKey(joinCode string) string {
	return "snapshot:" + joinCode
}
