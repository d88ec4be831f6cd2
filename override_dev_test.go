//go:build devbuild

package tailmark

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCheckDisabled_EnvParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"0", false},
		{"false", false},
		{"not-a-bool", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv(DisableVersionCheckEnv, tt.value)
			require.Equal(t, tt.want, versionCheckDisabled())
		})
	}
}

func TestVersionCheckOverride_IdentityMismatchOnly(t *testing.T) {
	t.Setenv(DisableVersionCheckEnv, "1")

	svc := newService(t, WithBuildIdentity("build-A"))
	blob, err := svc.StampedBlob([]byte("payload"))
	require.NoError(t, err)

	// Identity mismatch is overridden.
	other := newService(t, WithBuildIdentity("build-B"))
	require.True(t, other.IsCompatible(blob))

	// The override never excuses a tampered payload.
	tampered := append([]byte{}, blob...)
	tampered[0] ^= 0xFF
	require.False(t, other.IsCompatible(tampered))

	// Nor a blob with no usable metadata at all.
	require.False(t, other.IsCompatible([]byte("unversioned")))
}
