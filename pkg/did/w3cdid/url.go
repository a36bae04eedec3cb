package w3cdid

import (
	"net/url"
	"regexp"
	"strings"
)

// didRe matches a bare DID: method and method-specific id, no
// path/query/fragment remainder
var didRe = regexp.MustCompile(`^did:[a-z0-9]+:(?:[A-Za-z0-9._-]|%[0-9A-Fa-f]{2}|:)*(?:[A-Za-z0-9._-]|%[0-9A-Fa-f]{2})$`)

type URL string

func (u URL) Scheme() string {
	return "did"
}

func (u URL) Method() string {
	uri, _ := url.Parse(string(u))
	p := strings.SplitN(uri.Opaque, ":", 2)
	return p[0]
}

func (u URL) Id() string {
	uri, _ := url.Parse(string(u))
	p := strings.SplitN(uri.Opaque, ":", 2)
	if len(p) < 2 {
		return ""
	}

	return p[1]
}

func (u URL) Query() string {
	uri, _ := url.Parse(string(u))
	return uri.RawQuery
}

func (u URL) Fragment() string {
	uri, _ := url.Parse(string(u))
	return uri.Fragment
}

// DID returns the bare DID with any path, query or fragment stripped
func (u URL) DID() string {
	s := string(u)
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}

	return s
}

// IsValid reports whether u is a well-formed bare DID. A DID URL
// carrying a path, query or fragment is not valid in the bare form
func (u URL) IsValid() bool {
	return didRe.MatchString(string(u))
}
