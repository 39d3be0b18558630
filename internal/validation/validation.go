// Package validation contains the form-field predicates and the composite
// profile-form validator used by the CLI before anything is sent to the
// backend. The predicates are pure and safe for concurrent use.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/thoas/go-funk"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BloodGroups is the closed, case-sensitive set of accepted blood groups.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// DefaultMaxFileSizeMB limits uploaded documents to 10 MB.
const DefaultMaxFileSizeMB = 10

// DefaultAllowedFileTypes lists the MIME types accepted for document upload.
var DefaultAllowedFileTypes = []string{"application/pdf", "image/jpeg", "image/png"}

// IsValidEmail reports whether s looks like local@domain.tld with no
// whitespace or extra '@' in either part.
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// IsValidPassword reports whether s satisfies the provider's minimum policy:
// at least 8 characters with at least one lowercase letter, one uppercase
// letter and one digit.
func IsValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// IsValidBloodGroup reports whether s is exactly one of the 8 enumerated
// blood groups. Matching is case-sensitive: "a+" and "A" are rejected.
func IsValidBloodGroup(s string) bool {
	return funk.ContainsString(BloodGroups, s)
}

// IsValidFileSize reports whether a file of size bytes fits within maxSizeMB.
func IsValidFileSize(size int64, maxSizeMB int64) bool {
	return size <= maxSizeMB*1024*1024
}

// IsValidFileType reports whether mimeType is one of allowed.
func IsValidFileType(mimeType string, allowed []string) bool {
	return funk.ContainsString(allowed, mimeType)
}

// normalizeSpace trims surrounding whitespace the way the form inputs do
// before length checks.
func normalizeSpace(s string) string {
	return strings.TrimSpace(s)
}
