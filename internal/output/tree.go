package output

import (
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	branchMid  = "├── "
	branchEnd  = "└── "
	guideLine  = "│   "
	guideBlank = "    "

	// Column at which file notes start.
	noteColumn = 30
)

// FileEntry is a generated file shown by RenderFileTree.
type FileEntry struct {
	// Path is slash-separated and relative to the tree root.
	Path string

	// Description is shown next to the file name.
	Description string

	// Replaced marks a file that existed and was overwritten.
	Replaced bool
}

type treeDir struct {
	dirs  map[string]*treeDir
	files []FileEntry
}

func newTreeDir() *treeDir {
	return &treeDir{dirs: map[string]*treeDir{}}
}

func (d *treeDir) add(e FileEntry) {
	dir, base := path.Split(strings.TrimPrefix(path.Clean(e.Path), "/"))
	cur := d
	for _, part := range strings.Split(strings.TrimSuffix(dir, "/"), "/") {
		if part == "" {
			continue
		}
		next, ok := cur.dirs[part]
		if !ok {
			next = newTreeDir()
			cur.dirs[part] = next
		}
		cur = next
	}
	e.Path = base
	cur.files = append(cur.files, e)
}

// RenderFileTree draws entries as a tree under root. Directories are listed
// before files and both are sorted by name. Replaced files are flagged.
func RenderFileTree(root string, entries []FileEntry) string {
	if len(entries) == 0 {
		return ""
	}

	top := newTreeDir()
	for _, e := range entries {
		top.add(e)
	}

	styles := GetStyles()
	var sb strings.Builder
	sb.WriteString(styles.Bold.Render(root + "/"))
	sb.WriteString("\n")
	writeTreeDir(&sb, top, "", styles)
	return sb.String()
}

func writeTreeDir(sb *strings.Builder, d *treeDir, indent string, styles *Styles) {
	dirNames := make([]string, 0, len(d.dirs))
	for name := range d.dirs {
		dirNames = append(dirNames, name)
	}
	slices.Sort(dirNames)

	files := slices.Clone(d.files)
	slices.SortFunc(files, func(a, b FileEntry) int { return strings.Compare(a.Path, b.Path) })

	total := len(dirNames) + len(files)
	for i, name := range dirNames {
		last := i == total-1
		sb.WriteString(indent + branch(last) + name + "/\n")
		writeTreeDir(sb, d.dirs[name], indent+guide(last), styles)
	}

	for i, f := range files {
		line := indent + branch(len(dirNames)+i == total-1) + f.Path
		var notes []string
		if f.Description != "" {
			notes = append(notes, styles.Muted.Render(f.Description))
		}
		if f.Replaced {
			notes = append(notes, styles.Warning.Render("(replaced)"))
		}
		if len(notes) > 0 {
			line += strings.Repeat(" ", max(noteColumn-lipgloss.Width(line), 2)) + strings.Join(notes, " ")
		}
		sb.WriteString(line + "\n")
	}
}

func branch(last bool) string {
	if last {
		return branchEnd
	}
	return branchMid
}

func guide(last bool) string {
	if last {
		return guideBlank
	}
	return guideLine
}
