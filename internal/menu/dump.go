package menu

import (
	"fmt"
	"strings"
)

// Node is a plain copy of a live menu, used for dumps.
type Node struct {
	Title     string    `yaml:"title,omitempty"`
	ID        CommandID `yaml:"id,omitempty"`
	Separator bool      `yaml:"separator,omitempty"`
	Checked   bool      `yaml:"checked,omitempty"`
	Disabled  bool      `yaml:"disabled,omitempty"`
	Items     []Node    `yaml:"items,omitempty"`
}

// Snapshot copies the structure and state of c.
func Snapshot(c Container) []Node {
	items := c.Items()
	nodes := make([]Node, 0, len(items))

	for _, it := range items {
		n := Node{
			Title:     it.Title(),
			ID:        it.ID(),
			Separator: it.IsSeparator(),
			Checked:   it.Checked(),
			Disabled:  !it.Enabled(),
		}
		if n.Separator {
			n.Title = ""
		}
		if s := it.Submenu(); s != nil {
			n.Items = Snapshot(s)
		}
		nodes = append(nodes, n)
	}

	return nodes
}

// FormatTree renders nodes as an indented outline, one item per line.
func FormatTree(nodes []Node) string {
	var sb strings.Builder
	writeTree(&sb, nodes, 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, nodes []Node, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, n := range nodes {
		switch {
		case n.Separator:
			fmt.Fprintf(sb, "%s%s\n", indent, Separator)
		case n.Items != nil || n.ID == 0:
			fmt.Fprintf(sb, "%s%s\n", indent, strings.ReplaceAll(n.Title, "\t", "  "))
			writeTree(sb, n.Items, depth+1)
		default:
			mark := "[ ]"
			if n.Checked {
				mark = "[x]"
			}
			state := ""
			if n.Disabled {
				state = " (disabled)"
			}
			fmt.Fprintf(sb, "%s%s %s  #%d%s\n", indent, mark, strings.ReplaceAll(n.Title, "\t", "  "), n.ID, state)
		}
	}
}
