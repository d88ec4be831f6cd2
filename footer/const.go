package footer

// Magic is the fixed, versionless marker that terminates every footered blob.
// It only signals that a footer is present at all; it carries no version
// information, so presence detection works before any version-specific
// parsing is attempted.
const Magic = "TMRK footer!"

// framing sizes in bytes
const (
	MagicSize  = len(Magic)             // trailing magic marker
	LengthSize = 8                      // uint64 payload-length word before the marker
	FrameSize  = LengthSize + MagicSize // framing after the metadata record
	TagSize    = 8                      // leading (major, minor) pair of the record

	// MinSize is the smallest buffer that can hold any footer at all:
	// framing plus the record's format tag.
	MinSize = FrameSize + TagSize
)
