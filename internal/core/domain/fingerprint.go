package domain

import (
	"encoding/json"
	"strings"
)

// LibraryKeyPrefix distinguishes library entries from class entries in a
// module's fingerprint map.
const LibraryKeyPrefix = "lib:"

// Fingerprint identifies the observed state of one file.
// Class files carry a content Digest, library archives carry a ModTime in
// milliseconds. The zero value never matches a recorded fingerprint.
type Fingerprint struct {
	Digest  string
	ModTime int64
}

// ContentFingerprint returns a fingerprint for a content digest.
func ContentFingerprint(digest string) Fingerprint {
	return Fingerprint{Digest: digest}
}

// ModTimeFingerprint returns a fingerprint for a modification time in milliseconds.
func ModTimeFingerprint(millis int64) Fingerprint {
	return Fingerprint{ModTime: millis}
}

// MarshalJSON encodes digests as strings and modification times as numbers.
func (f Fingerprint) MarshalJSON() ([]byte, error) {
	if f.Digest != "" {
		return json.Marshal(f.Digest)
	}
	return json.Marshal(f.ModTime)
}

// UnmarshalJSON accepts either a digest string or a numeric modification time.
func (f *Fingerprint) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var digest string
		if err := json.Unmarshal(data, &digest); err != nil {
			return err
		}
		*f = Fingerprint{Digest: digest}
		return nil
	}

	var millis float64
	if err := json.Unmarshal(data, &millis); err != nil {
		return err
	}
	*f = Fingerprint{ModTime: int64(millis)}
	return nil
}

// ModuleFingerprints maps file paths, and lib: prefixed library paths, to fingerprints.
type ModuleFingerprints map[string]Fingerprint

// FingerprintCache maps module names to their fingerprints.
type FingerprintCache map[string]ModuleFingerprints

// LibraryKey returns the cache key of a library archive.
func LibraryKey(path string) string {
	return LibraryKeyPrefix + path
}

// IsLibraryKey reports whether key names a library archive.
func IsLibraryKey(key string) bool {
	return strings.HasPrefix(key, LibraryKeyPrefix)
}
