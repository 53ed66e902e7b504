// Package document loads the files a window displays.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ionut-t/folio/internal/menu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var (
	ErrNoDocument  = errors.New("no document")
	ErrUnsupported = errors.New("unsupported document type")
)

// Document is an opened file.
type Document struct {
	Path     string
	Flavor   menu.Flavor
	Caps     menu.Capabilities
	Size     int64
	Modified time.Time

	// Pages is the page count of paged documents. Reflowed documents are
	// paginated by the viewer.
	Pages int

	// Source is the markdown shown for reflowed documents.
	Source string

	pdf   *model.Context
	texts map[int]string
}

// FlavorOf returns the window flavor for a file name.
func FlavorOf(path string) (menu.Flavor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return menu.FlavorDocument, nil
	case ".md", ".markdown", ".txt":
		return menu.FlavorEbook, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
}

// Open loads the file at path.
func Open(path string) (*Document, error) {
	flavor, err := FlavorOf(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDocument, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNoDocument, path)
	}

	doc := &Document{
		Path:     path,
		Flavor:   flavor,
		Size:     info.Size(),
		Modified: info.ModTime(),
	}

	if flavor == menu.FlavorDocument {
		err = doc.loadPDF()
	} else {
		err = doc.loadText()
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Name returns the file name without directories.
func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

// Property is one line of the properties dialog.
type Property struct {
	Name  string
	Value string
}

// Properties describes the document for the properties dialog.
func (d *Document) Properties() []Property {
	props := []Property{
		{Name: "File", Value: d.Path},
		{Name: "Type", Value: d.Flavor.String()},
		{Name: "Size", Value: formatSize(d.Size)},
		{Name: "Modified", Value: d.Modified.Format("02/01/2006 15:04")},
	}

	if d.Pages > 0 {
		props = append(props, Property{Name: "Pages", Value: fmt.Sprint(d.Pages)})
	}
	if d.pdf != nil {
		props = append(props, Property{Name: "PDF version", Value: d.pdf.VersionString()})
	}

	return props
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
