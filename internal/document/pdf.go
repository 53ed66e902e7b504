package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/ionut-t/folio/internal/menu"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const pdfCaps = menu.CapContinuous | menu.CapFacing | menu.CapPrint | menu.CapCopy | menu.CapToc

func (d *Document) loadPDF() error {
	f, err := os.Open(d.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoDocument, err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return fmt.Errorf("read %s: %w", d.Name(), err)
	}

	d.pdf = ctx
	d.Pages = ctx.PageCount
	d.Caps = pdfCaps
	d.texts = make(map[int]string)

	return nil
}

// PageText returns the text drawn on page n, counting from 1.
func (d *Document) PageText(n int) (string, error) {
	if d.pdf == nil {
		return "", ErrUnsupported
	}
	if n < 1 || n > d.Pages {
		return "", fmt.Errorf("page %d outside 1..%d", n, d.Pages)
	}

	if text, ok := d.texts[n]; ok {
		return text, nil
	}

	r, err := pdfcpu.ExtractPageContent(d.pdf, n)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", n, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", n, err)
	}

	text := contentText(data)
	d.texts[n] = text

	return text, nil
}

var stringLiteral = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)`)

// contentText pulls the shown strings out of a page content stream, one
// output line per text line operator.
func contentText(data []byte) string {
	var sb strings.Builder

	newline := func() {
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
	}

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range stringLiteral.FindAllSubmatch(line, -1) {
				sb.WriteString(unescape(m[1]))
			}

		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			newline()
			for _, m := range stringLiteral.FindAllSubmatch(line, -1) {
				sb.WriteString(unescape(m[1]))
			}

		case bytes.Equal(line, []byte("T*")), bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			newline()
		}
	}

	return strings.TrimSpace(sb.String())
}

// unescape decodes the escapes of a PDF string literal.
func unescape(raw []byte) string {
	var sb strings.Builder

	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			sb.WriteByte(raw[i])
			continue
		}

		i++
		switch c := raw[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v := int(c - '0')
			for j := 0; j < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; j++ {
				i++
				v = v*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(v))
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}
