package scan

import (
	"path"
	"slices"
	"strings"
)

const treeRule = "----------------------------------------"

// RenderTree formats candidates grouped by parent directory, the way they
// are shown before a dry run or a confirmation prompt. The output is a
// pure function of the candidate list.
func RenderTree(candidates []Candidate) string {
	byDir := make(map[string][]string)

	for _, c := range candidates {
		dir := path.Dir(c.Rel)
		byDir[dir] = append(byDir[dir], path.Base(c.Rel))
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}

	slices.Sort(dirs)

	var b strings.Builder

	b.WriteString("File structure to be processed:\n")
	b.WriteString(treeRule + "\n")

	for i, dir := range dirs {
		if dir == "." {
			b.WriteString("./\n")
		} else {
			b.WriteString(dir + "/\n")
		}

		names := byDir[dir]
		slices.Sort(names)

		for _, name := range names {
			b.WriteString("  └── " + name + "\n")
		}

		if i < len(dirs)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString(treeRule)

	return b.String()
}
