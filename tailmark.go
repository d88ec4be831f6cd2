// Package tailmark stamps and inspects the versioned metadata footer of
// precompiled computation artifacts ("blobs").
//
// A footer is appended after the payload bytes and located by scanning
// backward from the end of the buffer, so a loader can decide, without
// recompiling, whether a blob was produced by a compatible build. Blobs
// without a footer, with a corrupt footer, or with a footer written by an
// unknown encoding are all reported as distinct recoverable conditions; none
// of them is fatal and payload bytes are never touched.
//
// # Basic Usage
//
// Producing a stamped blob:
//
//	svc, _ := tailmark.NewService(tailmark.WithBuildIdentity("2.1.0-prod"))
//	blob, _ := svc.StampedBlob(payload)
//
// Checking a blob before loading it:
//
//	svc, _ := tailmark.NewService(tailmark.WithBuildIdentity("2.1.0-prod"))
//	if !svc.IsCompatible(blob) {
//	    // refuse the blob, or recompile
//	}
//
// Inspecting metadata directly:
//
//	rec, err := tailmark.ReadMetadata(blob)
//	switch {
//	case errors.Is(err, errs.ErrNoFooter):       // legacy unversioned blob
//	case errors.Is(err, errs.ErrUnknownVersion): // newer tooling wrote it
//	case errors.Is(err, errs.ErrCorruptFooter):  // damaged framing
//	case err == nil:
//	    fmt.Println(rec.Tag(), rec.BuildIdentity())
//	}
//
// # Package Structure
//
// This package is a thin facade over the footer (framing and location),
// metadata (versioned records), container (buffer ownership), and encoding
// (field codecs) packages. Use those directly for fine-grained control.
package tailmark

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tailmark/tailmark/container"
	"github.com/tailmark/tailmark/encoding"
	"github.com/tailmark/tailmark/errs"
	"github.com/tailmark/tailmark/footer"
	"github.com/tailmark/tailmark/internal/hash"
	"github.com/tailmark/tailmark/internal/options"
	"github.com/tailmark/tailmark/internal/pool"
	"github.com/tailmark/tailmark/metadata"
)

// Service stamps footers onto blobs and evaluates blob compatibility against
// one running build identity. The zero value is not usable; construct with
// NewService. A Service is immutable after construction and safe for
// concurrent use.
type Service struct {
	identity string
	logger   *slog.Logger
	digest   bool
}

// Option configures a Service.
type Option = options.Option[*Service]

// WithBuildIdentity sets the identity string stamped into produced footers
// and compared against on reads. Defaults to RunningBuildIdentity().
// Rejects an empty identity and identities longer than the string-field
// limit of the wire format.
func WithBuildIdentity(identity string) Option {
	return options.New(func(s *Service) error {
		if identity == "" {
			return errors.New("build identity must not be empty")
		}
		if len(identity) > encoding.MaxStringFieldLen {
			return errs.ErrFieldTooLarge
		}
		s.identity = identity

		return nil
	})
}

// WithLogger sets the logger used for mismatch and corruption warnings.
// Defaults to a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithPayloadDigest controls whether the writer stamps an xxHash64 payload
// digest into the footer and whether IsCompatible verifies stored digests.
// Enabled by default.
func WithPayloadDigest(enabled bool) Option {
	return options.NoError(func(s *Service) {
		s.digest = enabled
	})
}

// NewService creates a Service with the given options. Returns an error if
// any option carries invalid configuration.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		identity: RunningBuildIdentity(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		digest:   true,
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// FooterFor builds the complete footer for the given payload: a
// current-version metadata record, the payload-length word, and the magic
// marker. The caller appends the result after the payload bytes.
func (s *Service) FooterFor(payload []byte) ([]byte, error) {
	var digest uint64
	if s.digest {
		digest = hash.PayloadDigest(payload)
	}

	return s.buildFooter(uint64(len(payload)), digest)
}

// StampedBlob returns payload with its footer appended, as one new slice.
// The payload bytes are copied, never modified.
func (s *Service) StampedBlob(payload []byte) ([]byte, error) {
	ftr, err := s.FooterFor(payload)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, len(payload)+len(ftr))
	blob = append(blob, payload...)

	return append(blob, ftr...), nil
}

// ExportTo writes payload followed by its footer to w and returns the number
// of bytes written. This is the streaming counterpart of StampedBlob for
// export paths that write straight to a file or socket.
func (s *Service) ExportTo(w io.Writer, payload []byte) (int64, error) {
	n, err := w.Write(payload)
	written := int64(n)
	if err != nil {
		return written, fmt.Errorf("write payload: %w", err)
	}

	var digest uint64
	if s.digest {
		digest = hash.PayloadDigest(payload)
	}
	rec := metadata.NewRecord(s.identity, digest)

	buf := pool.GetFooterBuffer()
	defer pool.PutFooterBuffer(buf)

	buf.B, err = rec.AppendTo(buf.B)
	if err != nil {
		return written, fmt.Errorf("serialize metadata record: %w", err)
	}
	buf.B = footer.AppendFrame(buf.B, uint64(len(payload)))

	fn, err := buf.WriteTo(w)
	written += fn
	if err != nil {
		return written, fmt.Errorf("write footer: %w", err)
	}

	return written, nil
}

func (s *Service) buildFooter(payloadLen uint64, digest uint64) ([]byte, error) {
	rec := metadata.NewRecord(s.identity, digest)

	recBytes, err := rec.AppendTo(nil)
	if err != nil {
		return nil, fmt.Errorf("serialize metadata record: %w", err)
	}

	return footer.Append(nil, recBytes, payloadLen), nil
}

// ReadMetadata locates and decodes the metadata record of buf.
//
// The error is nil on success, or one of the sentinel conditions from the
// errs package: ErrNoFooter for a legacy unversioned blob, ErrCorruptFooter
// for inconsistent framing, ErrUnknownVersion for a tag this build cannot
// decode, ErrTruncatedRecord/ErrTruncatedField for a record that ends early.
// Every outcome is recoverable; callers treat any non-nil error as "no
// compatibility information available".
func (s *Service) ReadMetadata(buf []byte) (metadata.Record, error) {
	rec, _, err := s.readMetadata(buf)

	return rec, err
}

// ReadMetadataFrom reads metadata out of a container-owned blob. Returns
// ErrBufferReleased if the container's memory has already been released.
func (s *Service) ReadMetadataFrom(c container.Container) (metadata.Record, error) {
	if c.Released() {
		return nil, errs.ErrBufferReleased
	}

	return s.ReadMetadata(c.Bytes())
}

func (s *Service) readMetadata(buf []byte) (metadata.Record, footer.Range, error) {
	rng, err := footer.Locate(buf)
	if err != nil {
		return nil, footer.Range{}, err
	}

	rec, err := metadata.Decode(rng.Record(buf))
	if err != nil {
		return nil, footer.Range{}, err
	}

	return rec, rng, nil
}

// IsCompatible reports whether buf carries a decodable footer whose build
// identity matches this Service's identity and whose stored payload digest,
// if any, matches the payload bytes.
//
// Any ReadMetadata failure yields false. The developer override (see
// override notes in this package) can force the identity comparison to pass,
// but never bypasses a missing, corrupt, or unknown-version footer and never
// bypasses a digest mismatch.
func (s *Service) IsCompatible(buf []byte) bool {
	rec, rng, err := s.readMetadata(buf)
	if err != nil {
		s.logger.Warn("blob metadata unavailable", "error", err)
		return false
	}

	if !rec.CompatibleWith(s.identity) {
		s.logger.Warn("blob build identity mismatch",
			"blob", rec.BuildIdentity(),
			"running", s.identity,
		)
		if !versionCheckDisabled() {
			return false
		}
	}

	if s.digest {
		if stored, ok := rec.PayloadDigest(); ok && stored != 0 {
			if actual := hash.PayloadDigest(rng.Payload(buf)); actual != stored {
				s.logger.Warn("blob payload digest mismatch",
					"stored", stored,
					"actual", actual,
				)

				return false
			}
		}
	}

	return true
}

// defaultService uses the running build identity with default settings; the
// defaults are all valid, so construction cannot fail.
var defaultService, _ = NewService()

// WriteFooter builds a footer for a payload of payloadLen bytes stamped with
// the given build identity. It records no payload digest; use a Service when
// digest stamping is wanted.
func WriteFooter(payloadLen uint64, identity string) ([]byte, error) {
	svc, err := NewService(WithBuildIdentity(identity), WithPayloadDigest(false))
	if err != nil {
		return nil, err
	}

	return svc.buildFooter(payloadLen, 0)
}

// ReadMetadata locates and decodes the metadata record of buf using a default
// Service. See Service.ReadMetadata.
func ReadMetadata(buf []byte) (metadata.Record, error) {
	return defaultService.ReadMetadata(buf)
}

// IsCompatible reports whether buf is compatible with the given running build
// identity. See Service.IsCompatible.
func IsCompatible(buf []byte, identity string) bool {
	svc, err := NewService(WithBuildIdentity(identity))
	if err != nil {
		return false
	}

	return svc.IsCompatible(buf)
}
