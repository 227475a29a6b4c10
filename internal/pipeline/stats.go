package pipeline

// Annotation keys and values written to collection records.
const (
	AnnotationSource = "metadata_source"
	AnnotationRule   = "inferred_by"

	SourceManifest = "manifest"
	SourceInferred = "filename"
)

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	PlanID string

	Discovered   int // Files found by discovery.
	FromManifest int // Records given metadata by the manifest.
	Inferred     int // Records given metadata from their file name.
	Harmonized   int // Inferred show titles given a year from siblings.
	Selected     int

	Planned   int
	Ready     int
	Warning   int
	Error     int
	Unchanged int
	Conflicts int
	Renamable int // Changed, conflict-free and rendered without error.
}
