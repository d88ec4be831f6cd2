package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tailmark/tailmark/endian"
	"github.com/tailmark/tailmark/errs"
)

func TestStringField_RoundTrip(t *testing.T) {
	engine := endian.Little()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "2024.4.0-12345-abcdef"},
		{"non-ascii bytes", "build-\xff\x00-raw"},
		{"max length", strings.Repeat("v", MaxStringFieldLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := AppendStringField(nil, engine, tt.text)
			require.NoError(t, err)
			require.Len(t, encoded, StringFieldSize(tt.text))

			decoded, n, err := DecodeStringField(encoded, engine)
			require.NoError(t, err)
			require.Equal(t, tt.text, decoded)
			require.Equal(t, len(encoded), n)
		})
	}
}

func TestAppendStringField_TooLarge(t *testing.T) {
	_, err := AppendStringField(nil, endian.Little(), strings.Repeat("x", MaxStringFieldLen+1))
	require.ErrorIs(t, err, errs.ErrFieldTooLarge)
}

func TestAppendStringField_AppendsToDst(t *testing.T) {
	engine := endian.Little()

	dst := []byte{0xAA, 0xBB}
	encoded, err := AppendStringField(dst, engine, "id")
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB}, encoded[:2])

	decoded, _, err := DecodeStringField(encoded[2:], engine)
	require.NoError(t, err)
	require.Equal(t, "id", decoded)
}

func TestDecodeStringField_Truncated(t *testing.T) {
	engine := endian.Little()

	t.Run("short prefix", func(t *testing.T) {
		_, _, err := DecodeStringField([]byte{1, 0}, engine)
		require.ErrorIs(t, err, errs.ErrTruncatedField)
	})

	t.Run("declared length exceeds data", func(t *testing.T) {
		encoded, err := AppendStringField(nil, engine, "abcdef")
		require.NoError(t, err)

		_, _, err = DecodeStringField(encoded[:len(encoded)-1], engine)
		require.ErrorIs(t, err, errs.ErrTruncatedField)
	})

	t.Run("prefix only", func(t *testing.T) {
		encoded := engine.AppendUint32(nil, 10)
		_, _, err := DecodeStringField(encoded, engine)
		require.ErrorIs(t, err, errs.ErrTruncatedField)
	})
}

func TestDecodeStringField_OversizedPrefix(t *testing.T) {
	engine := endian.Little()

	// A corrupted prefix must be rejected before any allocation happens.
	encoded := engine.AppendUint32(nil, MaxStringFieldLen+1)
	_, _, err := DecodeStringField(encoded, engine)
	require.ErrorIs(t, err, errs.ErrFieldTooLarge)
}

func TestDecodeStringField_ConsumesOnlyField(t *testing.T) {
	engine := endian.Little()

	encoded, err := AppendStringField(nil, engine, "abc")
	require.NoError(t, err)
	encoded = append(encoded, 0xDE, 0xAD)

	decoded, n, err := DecodeStringField(encoded, engine)
	require.NoError(t, err)
	require.Equal(t, "abc", decoded)
	require.Equal(t, len(encoded)-2, n)
}
