// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upgrade

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes a migration error.
type Kind string

const (
	KindParse          Kind = "parse"           // input is not valid YAML
	KindVersion        Kind = "version"         // yaml_version missing or not 4
	KindMissingSection Kind = "missing_section" // project or documentation absent
	KindMissingField   Kind = "missing_field"   // required field absent or empty
	KindInvalidField   Kind = "invalid_field"   // field present but not acceptable
	KindMalformed      Kind = "malformed"       // field has a shape the migrator cannot read
)

// Error is returned by Migrate. Its message is the text shown to the user;
// Kind and Fields let callers tell failures apart.
type Error struct {
	Kind Kind

	// Fields names the offending info.yaml paths. More than one path means
	// any of them would have satisfied the check.
	Fields []string

	Found    string
	Expected string
	Detail   string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindParse:
		return fmt.Sprintf("Failed to parse info.yaml: %v", e.Cause)
	case KindVersion:
		return fmt.Sprintf("Incorrect %s in info.yaml: found %s, expected %s", e.fieldList(), e.Found, e.Expected)
	case KindMissingSection, KindMissingField:
		return fmt.Sprintf("Missing %s section in info.yaml", e.fieldList())
	case KindInvalidField:
		return fmt.Sprintf("Invalid value for %s in info.yaml: got %q, expected %s", e.fieldList(), e.Found, e.Expected)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Malformed %s in info.yaml", e.fieldList())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Field returns the first offending path.
func (e *Error) Field() string {
	if len(e.Fields) == 0 {
		return ""
	}
	return e.Fields[0]
}

func (e *Error) fieldList() string {
	quoted := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		quoted[i] = "'" + f + "'"
	}
	return strings.Join(quoted, " or ")
}

// IsKind reports whether err is a migration error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// Convenience constructors

// ParseFailed wraps a YAML parser error.
func ParseFailed(cause error) *Error {
	return &Error{Kind: KindParse, Cause: cause}
}

// VersionMismatch reports an unsupported yaml_version.
func VersionMismatch(found, expected string) *Error {
	return &Error{Kind: KindVersion, Fields: []string{"yaml_version"}, Found: found, Expected: expected}
}

// MissingSection reports an absent top-level section.
func MissingSection(section string) *Error {
	return &Error{Kind: KindMissingSection, Fields: []string{section}}
}

// MissingField reports a required field that is absent or empty. Passing
// several paths means any one of them is acceptable.
func MissingField(paths ...string) *Error {
	return &Error{Kind: KindMissingField, Fields: paths}
}

// InvalidField reports a field whose value is not acceptable.
func InvalidField(path, found, expected string) *Error {
	return &Error{Kind: KindInvalidField, Fields: []string{path}, Found: found, Expected: expected}
}

// Malformed reports a field whose shape cannot be read, such as a mapping
// where text is expected.
func Malformed(path string, cause error) *Error {
	return &Error{Kind: KindMalformed, Fields: []string{path}, Cause: cause}
}
