package framework

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/SwagCode4U/projectmaker/pkg/models"
)

// Filesystem permissions used for generated output.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
	ExecPerm fs.FileMode = 0o755
)

// FileSpec is one file a module writes, relative to its framework folder.
// Order matters: operations are reported in FileSpec order.
type FileSpec struct {
	Rel     string
	Content []byte
}

// WriteTree writes the given files under root/folder, creating parent
// directories as needed. Each successful write appends one operation; each
// failure appends one error and the remaining files are still attempted, so
// a single bad path never aborts the whole module build.
func WriteTree(root, folder string, files []FileSpec) models.BuildResult {
	var result models.BuildResult
	base := filepath.Join(root, folder)
	prefix := ""
	if folder != "" {
		prefix = folder + "/"
	}

	for _, f := range files {
		rel := path.Clean(strings.ReplaceAll(f.Rel, "\\", "/"))
		dest := filepath.Join(base, filepath.FromSlash(rel))

		if err := os.MkdirAll(filepath.Dir(dest), DirPerm); err != nil {
			result.Err(fmt.Sprintf("mkdir for %s%s: %v", prefix, rel, err))
			continue
		}

		perm := FilePerm
		if strings.HasSuffix(rel, ".sh") {
			perm = ExecPerm
		}
		if err := os.WriteFile(dest, f.Content, perm); err != nil {
			result.Err(fmt.Sprintf("write %s%s: %v", prefix, rel, err))
			continue
		}
		result.Op(fmt.Sprintf("Created: %s%s", prefix, rel))
	}

	return result
}
