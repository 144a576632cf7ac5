package ports

//go:generate mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks

// Archiver reads and writes zip archives.
type Archiver interface {
	// Extract unpacks archive into dest, overwriting existing files.
	Extract(archive, dest string) error
	// Pack writes every file below src accepted by include into archive.
	// Entry names are slash separated paths relative to src. A nil include accepts all.
	Pack(src, archive string, include func(rel string) bool) error
}
