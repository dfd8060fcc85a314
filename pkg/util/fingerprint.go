package util

import (
	"hash/fnv"
)

// Fingerprint folds the given parts into a uint64 FNV-1a digest. Analytics
// counts visitors by a fingerprint of IP and user agent instead of storing
// the raw IP in Redis.
func Fingerprint(parts ...string) uint64 {
	h := fnv.New64a()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{'|'})
		}
		h.Write([]byte(p))
	}
	return h.Sum64()
}
