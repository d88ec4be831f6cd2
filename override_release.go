//go:build !devbuild

package tailmark

// Release builds never honor the version-check override; the escape hatch is
// compiled in only under the devbuild tag.
func versionCheckDisabled() bool {
	return false
}
