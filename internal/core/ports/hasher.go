package ports

//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks

// Hasher computes content digests.
type Hasher interface {
	// Digest returns the hex content digest of the file at path.
	Digest(path string) (string, error)
}
