package hash

import "github.com/cespare/xxhash/v2"

// PayloadDigest computes the xxHash64 digest of the given payload bytes.
//
// This is the digest stored in the 2.1 record's payload-digest field. A zero
// stored digest means "not recorded"; the chance of a real payload hashing to
// exactly zero is negligible and such a blob merely loses digest coverage.
func PayloadDigest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
