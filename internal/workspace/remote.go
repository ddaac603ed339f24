package workspace

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the prefix format of every directory toolkami creates.
const DateLayout = "2006-01-02"

// DefaultHosts are the hosting-service domains that always mark a name as a
// remote reference.
var DefaultHosts = []string{"github.com", "gitlab.com"}

// RemoteRef is the parsed form of a remote repository reference.
type RemoteRef struct {
	Host string
	User string
	Repo string
}

var (
	remotePrefix = regexp.MustCompile(`^(https?://|git@)`)

	// scheme://[user@]host[:port]/user/repo[.git][/]
	urlRemote = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://(?:[^@/\s]+@)?([^/:@\s]+)(?::\d+)?/([^/\s]+)/([^/\s]+?)(?:\.git)?/?$`)

	// user@host:user/repo[.git][/]
	scpRemote = regexp.MustCompile(`^[^@/:\s]+@([^/:@\s]+):([^/\s]+)/([^/\s]+?)(?:\.git)?/?$`)

	separators = regexp.MustCompile(`[\s/]+`)
)

// LooksLikeRemote reports whether name has the shape of a remote repository
// reference: a URL or scp-style prefix, a known hosting domain anywhere in
// it, or a .git suffix. hosts extends DefaultHosts.
func LooksLikeRemote(name string, hosts []string) bool {
	if remotePrefix.MatchString(name) || strings.HasSuffix(name, ".git") {
		return true
	}
	for _, list := range [][]string{DefaultHosts, hosts} {
		for _, host := range list {
			if host != "" && strings.Contains(name, host) {
				return true
			}
		}
	}
	return false
}

// ParseRemote extracts host, user and repository from a URL or scp-style
// reference. Anything that only partly matches either form is rejected.
func ParseRemote(uri string) (RemoteRef, bool) {
	for _, re := range []*regexp.Regexp{urlRemote, scpRemote} {
		m := re.FindStringSubmatch(uri)
		if m == nil {
			continue
		}
		ref := RemoteRef{Host: m[1], User: m[2], Repo: m[3]}
		if !validSegment(ref.User) || !validSegment(ref.Repo) {
			return RemoteRef{}, false
		}
		return ref, true
	}
	return RemoteRef{}, false
}

func validSegment(s string) bool {
	return s != "" && s != "." && s != ".."
}

// DatedName prefixes name with the date of now. Every run of whitespace or
// slashes becomes a single hyphen, so the result is one path component.
func DatedName(now time.Time, name string) string {
	return now.Format(DateLayout) + "-" + strings.Trim(separators.ReplaceAllString(name, "-"), "-")
}
