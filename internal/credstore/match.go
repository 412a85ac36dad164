package credstore

import (
	"net/url"
	"strings"

	"github.com/florianilch/git-credential-lookup/internal/gitcredential"
)

// Matches reports whether the store entry u, as yielded by Entries, satisfies the request.
//
// An entry must agree with the request on protocol or on host; agreeing on one of the two is
// enough. A username on both sides must be equal, and the entry path must be a prefix of the
// requested path.
func Matches(req *gitcredential.Credential, u *url.URL) bool {
	protocolMatches := req.Protocol != nil && *req.Protocol == u.Scheme
	// The port takes no part; two hostless sides agree, like two absent values
	host := hostname(u)
	hostMatches := (req.Host != nil && host != "" && *req.Host == host) || (req.Host == nil && host == "")
	if !protocolMatches && !hostMatches {
		return false
	}

	// An empty entry username counts as unset
	if req.Username != nil && u.User != nil {
		if actual := u.User.Username(); actual != "" && actual != *req.Username {
			return false
		}
	}

	if req.Path != nil && !strings.HasPrefix(*req.Path, strings.TrimPrefix(u.Path, "/")) {
		return false
	}

	return true
}
