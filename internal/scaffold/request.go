package scaffold

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// Defaults written into the generated loader's argp metadata.
const (
	DefaultVersion    = "0.1"
	DefaultBugAddress = "DeltaMail@qq.com"
)

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Request holds all template variables available to scaffold templates.
type Request struct {
	Name       string // e.g., "execsnoop"; directory name and C identifier prefix
	Version    string // argp_program_version suffix, e.g., "0.1"
	BugAddress string // argp_program_bug_address
}

// NewRequest creates a Request for name with default loader metadata.
func NewRequest(name string) *Request {
	return &Request{
		Name:       name,
		Version:    DefaultVersion,
		BugAddress: DefaultBugAddress,
	}
}

// Validate checks the request before anything touches disk. With unchecked
// set only the presence of a name is enforced for it.
func (r *Request) Validate(unchecked bool) error {
	if r.Name == "" {
		return ErrMissingArgument
	}
	if !unchecked {
		if err := ValidateName(r.Name); err != nil {
			return err
		}
	}
	if err := ValidateVersion(r.Version); err != nil {
		return err
	}
	return ValidateBugAddress(r.BugAddress)
}

// ValidateName checks that name is usable both as a single path segment and
// as a C identifier prefix (struct <name>_bpf, <name>_bpf__open, ...).
func ValidateName(name string) error {
	if name == "" {
		return ErrMissingArgument
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w %q: must match pattern [A-Za-z_][A-Za-z0-9_]*", ErrInvalidName, name)
	}
	return nil
}

// ValidateVersion checks that v parses as a semantic version. A leading "v"
// and missing minor/patch components are tolerated ("0.1" is accepted).
func ValidateVersion(v string) error {
	if _, err := semver.NewVersion(strings.TrimPrefix(v, "v")); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidVersion, v, err)
	}
	return nil
}

// ValidateBugAddress rejects text that would break out of a C string literal.
func ValidateBugAddress(addr string) error {
	for _, r := range addr {
		if r == '"' || r == '\\' || !unicode.IsPrint(r) {
			return fmt.Errorf("%w %q: quotes, backslashes and control characters are not allowed", ErrInvalidBugAddress, addr)
		}
	}
	return nil
}
