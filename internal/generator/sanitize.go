package generator

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// ErrPathEscape indicates a path resolved outside the allowed root.
var ErrPathEscape = errors.New("path escapes project root")

// splitSegments normalizes separators and returns the non-empty path
// segments of raw.
func splitSegments(raw string) []string {
	s := strings.ReplaceAll(strings.TrimSpace(raw), "\\", "/")
	var segs []string
	for _, p := range strings.Split(s, "/") {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// NormalizeRel cleans a user-typed path fragment into a safe project-relative
// path with forward slashes, no leading separator, no empty segments, and no
// parent-traversal tokens.
//
// Users routinely paste paths that echo the project name, or reference the
// generic "backend"/"frontend" anchors instead of the configured folder
// names. Those are repaired rather than rejected:
//
//   - everything up to and including a project-name segment is dropped
//   - a "backend"/"frontend" segment re-anchors the path there and is
//     replaced by the configured folder name
//   - ".." is stripped textually from every segment, so traversal embedded
//     inside a segment dies too
//
// NormalizeRel never fails; an empty result means the project root itself.
func NormalizeRel(raw string, cfg models.ProjectConfig) string {
	segs := splitSegments(raw)

	// Drop a redundant echoed project root.
	proj := strings.ToLower(cfg.ProjectName)
	if proj != "" {
		for i, seg := range segs {
			if strings.ToLower(seg) == proj {
				segs = segs[i+1:]
				break
			}
		}
	}

	// Re-anchor at a generic backend/frontend segment and remap it to the
	// configured folder name. Backend wins when both appear, matching the
	// anchor precedence the preview uses.
	if i := indexFold(segs, models.DefaultBackendFolder); i >= 0 {
		segs = segs[i:]
		segs[0] = cfg.BackendFolder()
	} else if i := indexFold(segs, models.DefaultFrontendFolder); i >= 0 {
		segs = segs[i:]
		segs[0] = cfg.FrontendFolder()
	}

	// Strip parent traversal textually, then drop any segment that
	// dissolved into nothing.
	out := segs[:0]
	for _, seg := range segs {
		seg = strings.ReplaceAll(seg, "..", "")
		if seg != "" {
			out = append(out, seg)
		}
	}

	return strings.Join(out, "/")
}

func indexFold(segs []string, want string) int {
	for i, seg := range segs {
		if strings.EqualFold(seg, want) {
			return i
		}
	}
	return -1
}

// SafeJoin is the strict sibling of NormalizeRel used when a raw path is
// resolved to an absolute filesystem location rather than cleaned for
// reconstruction under a known root. It resolves rel against root and
// returns ErrPathEscape when the result would leave root.
func SafeJoin(root, rel string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	segs := splitSegments(rel)
	// A leading segment matching the root's own name is a redundant echo.
	if len(segs) > 0 && segs[0] == filepath.Base(absRoot) {
		segs = segs[1:]
	}
	if len(segs) == 0 {
		return absRoot, nil
	}

	joined := filepath.Join(absRoot, filepath.FromSlash(strings.Join(segs, "/")))
	if joined != absRoot && !strings.HasPrefix(joined, absRoot+string(filepath.Separator)) {
		return "", ErrPathEscape
	}
	return joined, nil
}

// IsFileLike reports whether the final segment of a normalized path carries
// a dot-extension, which is how custom entries are sniffed into files versus
// directories.
func IsFileLike(rel string) bool {
	base := rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		base = rel[i+1:]
	}
	return strings.Contains(base, ".")
}
