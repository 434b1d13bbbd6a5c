package dialogkit

import (
	"time"
)

// FileRef represents a single file handle as reported by a display backend
// after a pick. It mirrors what the platform dialog reports: the file is
// identified by path, with the metadata the backend could observe at pick
// time.
type FileRef struct {
	Name        string
	Path        string
	Size        int64
	ModTime     time.Time
	ContentType string
}

// ============================================================================
// FileList (canonical Selection)
// ============================================================================

// FileList is the canonical, ordered selection snapshot. It is
// index-addressable like the platform's native file collection and is
// immutable from the caller's side: the backing slice is never exposed.
//
// A nil *FileList means "no selection".
type FileList struct {
	refs []FileRef
}

// NewFileList builds a FileList from file refs, preserving order and
// duplicates.
func NewFileList(refs ...FileRef) *FileList {
	l := &FileList{refs: make([]FileRef, len(refs))}
	copy(l.refs, refs)
	return l
}

// Len returns the number of files in the list. A nil list has length 0.
func (l *FileList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.refs)
}

// Item returns the file at index i, or nil if i is out of range.
func (l *FileList) Item(i int) *FileRef {
	if l == nil || i < 0 || i >= len(l.refs) {
		return nil
	}
	return &l.refs[i]
}

// Refs returns a copy of the underlying file refs.
func (l *FileList) Refs() []FileRef {
	if l == nil {
		return nil
	}
	out := make([]FileRef, len(l.refs))
	copy(out, l.refs)
	return out
}

// Paths returns the file paths in selection order.
func (l *FileList) Paths() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.refs))
	for i := range l.refs {
		out[i] = l.refs[i].Path
	}
	return out
}

// ============================================================================
// Selection Normalization
// ============================================================================

// InitialSelection is the accepted shape of a caller-supplied initial
// selection: either an already canonical *FileList or an ordered sequence
// of file refs ([FileRefs]).
type InitialSelection interface {
	initialSelection()
}

// FileRefs is an ordered sequence of file handles used as an initial
// selection. Order and duplicates are preserved when normalized.
type FileRefs []FileRef

func (*FileList) initialSelection() {}
func (FileRefs) initialSelection()  {}

// NormalizeSelection converts a caller-supplied initial selection into the
// canonical *FileList used throughout the controller.
//
//   - nil input yields nil.
//   - A *FileList is returned unchanged (identity preserved, no re-wrapping).
//   - FileRefs are appended, in order, into a freshly built FileList.
//
// The function is total over its input domain; there are no error cases.
func NormalizeSelection(init InitialSelection) *FileList {
	switch v := init.(type) {
	case nil:
		return nil
	case *FileList:
		return v
	case FileRefs:
		return NewFileList(v...)
	default:
		return nil
	}
}
