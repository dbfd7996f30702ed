// Package docio reads and writes configuration documents on disk.
package docio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"sigs.k8s.io/yaml"

	"github.com/dockscaffold/cli/internal/document"
	oerrors "github.com/dockscaffold/cli/internal/errors"
	"github.com/dockscaffold/cli/internal/output"
)

// Load reads and decodes the YAML document at path.
//
// A missing file yields an ErrNotFound detail error, an unreadable one an
// ErrPermission detail error and malformed YAML an ErrParse detail error.
func Load(path string) (*document.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, oerrors.NewNotFoundError(
				"document not found",
				path,
				"check the path or set it in the tool config",
			)
		case os.IsPermission(err):
			return nil, oerrors.NewPermissionError(
				"cannot read document",
				map[string]string{"path": path},
				"check file permissions",
			)
		default:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	m, err := document.Decode(data)
	if err != nil {
		hint := "check the YAML syntax"
		switch {
		case errors.Is(err, document.ErrNotMapping):
			hint = "the document root must be a YAML mapping"
		case errors.Is(err, document.ErrExcessiveAliasing):
			hint = "reduce nested anchor and alias use"
		}
		return nil, oerrors.NewParseError(path, err, hint)
	}
	return m, nil
}

// Render serializes m in the given format. Unknown formats render YAML.
func Render(m *document.Map, format output.Format) ([]byte, error) {
	data, err := document.Encode(m)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	if format != output.FormatJSON {
		return data, nil
	}

	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("converting document to JSON: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("indenting JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Write renders m and atomically replaces the file at path. The format
// follows the file extension: .json renders JSON, anything else YAML.
func Write(path string, m *document.Map) error {
	data, err := Render(m, FormatFor(path))
	if err != nil {
		return err
	}
	return WriteFile(path, data, 0o644)
}

// WriteFile atomically replaces path with data, creating parent
// directories as needed.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		if os.IsPermission(err) {
			return oerrors.NewPermissionError("cannot create output directory", map[string]string{"path": filepath.Dir(path)}, "")
		}
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		if os.IsPermission(err) {
			return oerrors.NewPermissionError("cannot write output", map[string]string{"path": path}, "check directory permissions")
		}
		return fmt.Errorf("creating pending file for %s: %w", path, err)
	}
	defer func() { _ = pf.Cleanup() }()

	if _, err := pf.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// FormatFor picks the output format from a file extension.
func FormatFor(path string) output.Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return output.FormatJSON
	}
	return output.FormatYAML
}
