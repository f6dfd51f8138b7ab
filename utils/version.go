package utils

import (
	"strings"

	"github.com/hashicorp/go-version"
)

// ServiceVersion is reported by the health endpoint.
const ServiceVersion = "0.1.0"

// ValidSemver checks that a version string shipped with the seed data
// parses as a semantic version. A leading 'v' prefix is tolerated.
func ValidSemver(s string) error {
	_, err := version.NewVersion(strings.TrimPrefix(s, "v"))
	return err
}
