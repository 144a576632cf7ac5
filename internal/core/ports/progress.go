package ports

//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

// Progress tracks a bounded unit of work.
type Progress interface {
	// Add records n completed items.
	Add(n int)
	// Finish completes the progress display.
	Finish()
}

// ProgressFactory creates progress trackers.
type ProgressFactory interface {
	// New returns a tracker for total items.
	New(total int, description string) Progress
}
