// Where: internal/usecase/scaffold/recorder.go
// What: In-memory Writer that captures generated files.
// Why: Let tests and dry runs inspect output without touching disk.
package scaffold

// File is one captured write.
type File struct {
	Path    string
	Content string
}

// Recorder is a Writer that keeps files in memory instead of touching disk.
type Recorder struct {
	Files []File
}

func (r *Recorder) Write(path, content string) error {
	r.Files = append(r.Files, File{Path: path, Content: content})
	return nil
}

// Paths returns the captured paths in write order.
func (r *Recorder) Paths() []string {
	paths := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		paths = append(paths, f.Path)
	}
	return paths
}
