package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ionut-t/folio/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDumpMenuTree(t *testing.T) {
	var buf bytes.Buffer

	err := dumpMenu(&buf, dumpOptions{flavor: "ebook", format: "tree", language: "en", loaded: true})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "&File\n"))
	assert.Contains(t, out, "[x] &Single Page  6  #410")
	assert.Contains(t, out, "[ ] &Facing  7  #411")
	assert.NotContains(t, out, "Book View", "ebooks have no book view")
}

func TestDumpContextMenuYAML(t *testing.T) {
	var buf bytes.Buffer

	err := dumpMenu(&buf, dumpOptions{flavor: "document", context: "link", format: "yaml", language: "en"})
	require.NoError(t, err)

	var nodes []menu.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &nodes))
	require.NotEmpty(t, nodes)

	assert.Equal(t, menu.IDCopyLinkTarget, nodes[0].ID)
	for _, n := range nodes {
		assert.NotEqual(t, menu.IDCopyComment, n.ID)
		assert.NotEqual(t, menu.IDCopySelection, n.ID)
	}
}

func TestDumpMenuErrors(t *testing.T) {
	var buf bytes.Buffer

	assert.Error(t, dumpMenu(&buf, dumpOptions{flavor: "scroll", format: "tree"}))
	assert.Error(t, dumpMenu(&buf, dumpOptions{flavor: "document", context: "margin", format: "tree"}))
	assert.Error(t, dumpMenu(&buf, dumpOptions{flavor: "document", format: "json"}))
}

func TestWriteIDs(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeIDs(&buf))

	out := buf.String()
	assert.Contains(t, out, "fit page")
	assert.Contains(t, out, "8.33%")
	assert.Contains(t, out, "continuous")
	assert.Contains(t, out, "zoom 420..437, layout 410..413")
}
