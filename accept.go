package dialogkit

import (
	"mime"
	"path/filepath"
	"sort"
	"strings"
)

// Common MIME types
const (
	MIMETypeTextPlain       = "text/plain"
	MIMETypeTextHTML        = "text/html"
	MIMETypeTextCSS         = "text/css"
	MIMETypeTextJavaScript  = "text/javascript"
	MIMETypeApplicationJSON = "application/json"
	MIMETypeApplicationXML  = "application/xml"
	MIMETypeImageJPEG       = "image/jpeg"
	MIMETypeImagePNG        = "image/png"
	MIMETypeImageGIF        = "image/gif"
	MIMETypeImageSVG        = "image/svg+xml"
	MIMETypeImageWebP       = "image/webp"
	MIMETypeAudioMP3        = "audio/mpeg"
	MIMETypeAudioOGG        = "audio/ogg"
	MIMETypeVideoMP4        = "video/mp4"
	MIMETypeVideoWebM       = "video/webm"
	MIMETypeApplicationPDF  = "application/pdf"
	MIMETypeApplicationZip  = "application/zip"
)

// Common file extensions to MIME types mapping
var extensionToMIME = map[string]string{
	".txt":  MIMETypeTextPlain,
	".html": MIMETypeTextHTML,
	".htm":  MIMETypeTextHTML,
	".css":  MIMETypeTextCSS,
	".js":   MIMETypeTextJavaScript,
	".json": MIMETypeApplicationJSON,
	".xml":  MIMETypeApplicationXML,
	".jpg":  MIMETypeImageJPEG,
	".jpeg": MIMETypeImageJPEG,
	".png":  MIMETypeImagePNG,
	".gif":  MIMETypeImageGIF,
	".svg":  MIMETypeImageSVG,
	".webp": MIMETypeImageWebP,
	".mp3":  MIMETypeAudioMP3,
	".ogg":  MIMETypeAudioOGG,
	".mp4":  MIMETypeVideoMP4,
	".webm": MIMETypeVideoWebM,
	".pdf":  MIMETypeApplicationPDF,
	".zip":  MIMETypeApplicationZip,
	".gz":   "application/gzip",
	".tar":  "application/x-tar",
	".csv":  "text/csv",
	".md":   "text/markdown",
}

// GuessContentType determines the content type of a file from its path.
// Backends use it to fill FileRef.ContentType after a pick.
func GuessContentType(filePath string) string {
	ext := strings.ToLower(filepath.Ext(filePath))
	if contentType, ok := extensionToMIME[ext]; ok {
		return contentType
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

// ============================================================================
// Accept Filter
// ============================================================================

// AcceptFilter is the parsed form of an Options.Accept string. Backends
// use it both to build native dialog filter lists ([AcceptFilter.Patterns])
// and to check candidate files themselves ([AcceptFilter.Match]) when the
// platform does not filter for them.
type AcceptFilter struct {
	raw   string
	terms []acceptTerm
}

type acceptTermKind int

const (
	acceptAll acceptTermKind = iota
	acceptExtension
	acceptMIMEWildcard // "image/*"
	acceptMIMEExact    // "application/pdf"
	acceptOpaque       // malformed, never matches locally
)

type acceptTerm struct {
	kind  acceptTermKind
	value string
}

// ParseAccept parses a comma-separated accept string. Recognized terms are
// "*" (match everything), extensions (".png"), and MIME patterns
// ("image/*", "application/pdf"). Malformed terms are carried verbatim and
// never match locally; the platform, not this library, rejects them.
func ParseAccept(accept string) AcceptFilter {
	f := AcceptFilter{raw: accept}
	for _, part := range strings.Split(accept, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.terms = append(f.terms, parseAcceptTerm(part))
	}
	return f
}

func parseAcceptTerm(term string) acceptTerm {
	switch {
	case term == "*" || term == "*/*":
		return acceptTerm{kind: acceptAll}
	case strings.HasPrefix(term, "."):
		return acceptTerm{kind: acceptExtension, value: strings.ToLower(term)}
	case strings.HasSuffix(term, "/*") && strings.Count(term, "/") == 1:
		return acceptTerm{kind: acceptMIMEWildcard, value: strings.ToLower(strings.TrimSuffix(term, "/*"))}
	case strings.Count(term, "/") == 1:
		return acceptTerm{kind: acceptMIMEExact, value: strings.ToLower(term)}
	default:
		return acceptTerm{kind: acceptOpaque, value: term}
	}
}

// String returns the original accept string.
func (f AcceptFilter) String() string { return f.raw }

// All reports whether the filter accepts everything. An empty accept
// string accepts everything as well.
func (f AcceptFilter) All() bool {
	if len(f.terms) == 0 {
		return true
	}
	for _, t := range f.terms {
		if t.kind == acceptAll {
			return true
		}
	}
	return false
}

// Match reports whether the file passes the filter. A file passes if any
// term accepts it.
func (f AcceptFilter) Match(ref *FileRef) bool {
	if ref == nil {
		return false
	}
	if f.All() {
		return true
	}

	ext := strings.ToLower(filepath.Ext(ref.Name))
	ct := ref.ContentType
	if ct == "" {
		ct = GuessContentType(ref.Name)
	}
	ct = strings.ToLower(ct)
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	for _, t := range f.terms {
		switch t.kind {
		case acceptExtension:
			if ext == t.value {
				return true
			}
		case acceptMIMEWildcard:
			if strings.HasPrefix(ct, t.value+"/") {
				return true
			}
		case acceptMIMEExact:
			if ct == t.value {
				return true
			}
		}
	}
	return false
}

// Patterns returns native-dialog filename globs for the filter, e.g.
// "*.png". MIME terms expand through the extension table; a filter that
// accepts everything yields a single "*".
func (f AcceptFilter) Patterns() []string {
	if f.All() {
		return []string{"*"}
	}

	seen := make(map[string]bool)
	var patterns []string
	add := func(ext string) {
		p := "*" + ext
		if !seen[p] {
			seen[p] = true
			patterns = append(patterns, p)
		}
	}

	for _, t := range f.terms {
		switch t.kind {
		case acceptExtension:
			add(t.value)
		case acceptMIMEExact:
			for ext, ct := range extensionToMIME {
				if ct == t.value {
					add(ext)
				}
			}
		case acceptMIMEWildcard:
			for ext, ct := range extensionToMIME {
				if strings.HasPrefix(ct, t.value+"/") {
					add(ext)
				}
			}
		}
	}

	if len(patterns) == 0 {
		// Only opaque terms: leave filtering entirely to the platform.
		return []string{"*"}
	}
	sort.Strings(patterns)
	return patterns
}
