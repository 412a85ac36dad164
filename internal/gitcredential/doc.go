// Package gitcredential implements the attribute format git uses to talk to credential helpers.
//
// Git writes a credential description to the helper's stdin as `key=value` lines terminated by a
// blank line (or end of input), and reads the helper's answer back from stdout in the same format:
//
//	protocol=https
//	host=example.com
//	path=org/repo.git
//	username=alice
//
// Every attribute is optional, so Credential keeps "absent" apart from "present but empty".
// Unknown attributes are ignored when decoding, as git expects of helpers.
package gitcredential
