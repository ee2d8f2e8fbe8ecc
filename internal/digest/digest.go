// Package digest computes the 128-bit content fingerprint used to detect
// duplicate files within a single run.
package digest

import (
	"crypto/md5"
	"encoding/hex"
)

// Digest is a 128-bit content fingerprint, hex-encoded for use as a map
// key and for display in diagnostics.
type Digest string

// Of hashes buffer into a Digest. MD5 is used purely as a fast, universally
// available 128-bit mixing function for deduplication, not as a
// cryptographic guarantee — collisions here only risk under-counting a
// genuinely distinct file as a duplicate, which the aggregate rules treat
// as an accepted, documented tradeoff of content-addressed dedup.
func Of(buffer []byte) Digest {
	sum := md5.Sum(buffer)
	return Digest(hex.EncodeToString(sum[:]))
}
