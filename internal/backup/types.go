package backup

// Config controls save backups taken before a trade writes.
type Config struct {
	Enabled bool
	// Dir receives the copies.
	Dir string
	// KeepLast is how many copies of each save are kept.
	KeepLast int
}
