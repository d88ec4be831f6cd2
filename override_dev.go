//go:build devbuild

package tailmark

import (
	"os"
	"strconv"
)

// DisableVersionCheckEnv forces IsCompatible to accept a blob whose build
// identity does not match the running build. Developer builds only; it never
// bypasses a missing, corrupt, or unknown-version footer, nor a payload
// digest mismatch.
const DisableVersionCheckEnv = "TAILMARK_DISABLE_VERSION_CHECK"

func versionCheckDisabled() bool {
	v := os.Getenv(DisableVersionCheckEnv)
	if v == "" {
		return false
	}

	b, err := strconv.ParseBool(v)

	return err == nil && b
}
