package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tailmark/tailmark/errs"
	"github.com/tailmark/tailmark/footer"
	"github.com/tailmark/tailmark/format"
)

func TestDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		record Record
	}{
		{"v1.0", NewRecordV1("2024.4.0-rc1")},
		{"v2.0", NewRecordV2(format.V2_0, "2025.1.0", 7, 0)},
		{"v2.1", NewRecordV2(format.V2_1, "2025.2.0", 0, 0xDEADBEEFCAFE)},
		{"current", NewRecord("0.0.0-dev", 42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.record.AppendTo(nil)
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, tt.record.Tag(), decoded.Tag())
			require.Equal(t, tt.record.BuildIdentity(), decoded.BuildIdentity())

			wantDigest, wantOK := tt.record.PayloadDigest()
			gotDigest, gotOK := decoded.PayloadDigest()
			require.Equal(t, wantOK, gotOK)
			require.Equal(t, wantDigest, gotDigest)
		})
	}
}

func TestDecode_Idempotent(t *testing.T) {
	data, err := NewRecord("build-x", 99).AppendTo(nil)
	require.NoError(t, err)

	first, err := Decode(data)
	require.NoError(t, err)
	second, err := Decode(data)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestDecode_UnknownVersion(t *testing.T) {
	tests := []struct {
		name string
		tag  format.Tag
	}{
		{"unknown major", format.Tag{Major: 999, Minor: 0}},
		{"unknown minor", format.Tag{Major: 2, Minor: 9}},
		{"zero tag", format.Tag{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A valid 1.0 body follows the unknown tag. Decoding must stop at
			// the tag and must not interpret the body with a known layout.
			body, err := NewRecordV1("should-not-be-read").AppendTo(nil)
			require.NoError(t, err)

			data := appendTag(nil, tt.tag)
			data = append(data, body[footer.TagSize:]...)

			rec, err := Decode(data)
			require.ErrorIs(t, err, errs.ErrUnknownVersion)
			require.Nil(t, rec)
		})
	}
}

func TestDecode_Truncated(t *testing.T) {
	t.Run("shorter than tag", func(t *testing.T) {
		_, err := Decode([]byte{1, 0, 0})
		require.ErrorIs(t, err, errs.ErrTruncatedRecord)
	})

	t.Run("v1 identity cut short", func(t *testing.T) {
		data, err := NewRecordV1("some-identity").AppendTo(nil)
		require.NoError(t, err)

		_, err = Decode(data[:len(data)-3])
		require.ErrorIs(t, err, errs.ErrTruncatedField)
	})

	t.Run("v2 requirements word missing", func(t *testing.T) {
		data := appendTag(nil, format.V2_0)
		data = append(data, 1, 2, 3)

		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrTruncatedRecord)
	})

	t.Run("v2.1 digest missing", func(t *testing.T) {
		data, err := NewRecordV2(format.V2_1, "id", 0, 123).AppendTo(nil)
		require.NoError(t, err)

		_, err = Decode(data[:len(data)-8])
		require.ErrorIs(t, err, errs.ErrTruncatedRecord)
	})
}

func TestDecode_EveryTruncationFailsCleanly(t *testing.T) {
	data, err := NewRecord("truncation-sweep", 7).AppendTo(nil)
	require.NoError(t, err)

	for cut := 0; cut < len(data); cut++ {
		_, err := Decode(data[:cut])
		require.Error(t, err, "cut at %d bytes", cut)
	}
}

func TestDecode_ToleratesTrailingBytes(t *testing.T) {
	data, err := NewRecordV1("id-1").AppendTo(nil)
	require.NoError(t, err)
	data = append(data, 0xFF, 0xFF, 0xFF)

	rec, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, "id-1", rec.BuildIdentity())
}

func TestDecode_V20BytesAreNotV21(t *testing.T) {
	// A 2.0 record followed by garbage must not make the 2.0 decoder consume
	// the garbage as a digest; the tag, not the length, selects the layout.
	data, err := NewRecordV2(format.V2_0, "id", 5, 0).AppendTo(nil)
	require.NoError(t, err)
	data = append(data, 0xEE, 0xEE, 0xEE, 0xEE, 0xEE, 0xEE, 0xEE, 0xEE)

	rec, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, format.V2_0, rec.Tag())

	_, ok := rec.PayloadDigest()
	require.False(t, ok)
}

func TestSupportedTags(t *testing.T) {
	tags := SupportedTags()
	require.Len(t, tags, 3)
	require.Contains(t, tags, format.V1_0)
	require.Contains(t, tags, format.V2_0)
	require.Contains(t, tags, format.V2_1)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	require.PanicsWithError(t, "duplicate format tag registration: 1.0", func() {
		register(format.V1_0, decodeV1)
	})
}
