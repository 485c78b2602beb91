package ingest

// Stats summarizes a directory walk.
type Stats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
	Failed  uint32
	// Errors holds the walk errors that were recorded and stepped over.
	Errors []string
}
