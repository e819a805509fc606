// Package tmplvars is the root of the template variable editor module.
// It carries the release version; the component lives in package editor.
package tmplvars

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z.-]+))?$`)

// Release is a parsed module version.
type Release struct {
	Major, Minor, Patch int
	Pre                 string
}

func (r Release) String() string {
	s := fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	if r.Pre != "" {
		s += "-" + r.Pre
	}
	return s
}

// ParseRelease parses "MAJOR.MINOR.PATCH[-PRE]". A leading "v" is accepted.
func ParseRelease(v string) (Release, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	m := releaseRE.FindStringSubmatch(v)
	if m == nil {
		return Release{}, fmt.Errorf("tmplvars: invalid release %q", v)
	}
	var r Release
	r.Major, _ = strconv.Atoi(m[1])
	r.Minor, _ = strconv.Atoi(m[2])
	r.Patch, _ = strconv.Atoi(m[3])
	r.Pre = m[4]
	return r, nil
}

// Version returns the embedded release without the leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner is the line printed by `tmplvars -version` and logged at startup.
// A malformed VERSION file is shown verbatim and flagged.
func Banner() string {
	r, err := ParseRelease(Version())
	if err != nil {
		return fmt.Sprintf("tmplvars %q (unparsed)", Version())
	}
	return "tmplvars v" + r.String()
}
