package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/datamodels/pkg/model"
)

// ErrUnknownFormat indicates an output format that has no renderer
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how the size table is rendered
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat resolves a format name, ignoring case
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatTOML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options configures Write
type Options struct {
	Format Format
	Bits   bool              // report bits instead of bytes
	Styled bool              // draw a bordered table for FormatText
	Models []model.DataModel // defaults to every model
}

// Document is the serialized form of the table
type Document struct {
	Unit   string  `yaml:"unit" toml:"unit"`
	Models []Entry `yaml:"models" toml:"models"`
}

// Entry is one data model's row in a Document
type Entry struct {
	Name     string `yaml:"name" toml:"name"`
	Notation string `yaml:"notation" toml:"notation"`
	Char     int    `yaml:"char" toml:"char"`
	Short    int    `yaml:"short" toml:"short"`
	Int      int    `yaml:"int" toml:"int"`
	Long     int    `yaml:"long" toml:"long"`
	LongLong int    `yaml:"long_long" toml:"long_long"`
	Pointer  int    `yaml:"pointer" toml:"pointer"`
}

// Build collects the widths for the selected models
func Build(opts Options) (*Document, error) {
	models := opts.Models
	if len(models) == 0 {
		models = model.Models()
	}

	width := model.SizeOf
	doc := &Document{Unit: "bytes"}
	if opts.Bits {
		width = model.BitsOf
		doc.Unit = "bits"
	}

	for _, m := range models {
		if !m.Valid() {
			return nil, fmt.Errorf("%w: %s", model.ErrUnknownModel, m)
		}
		doc.Models = append(doc.Models, Entry{
			Name:     m.String(),
			Notation: m.Notation(),
			Char:     width(m, model.Char),
			Short:    width(m, model.Short),
			Int:      width(m, model.Int),
			Long:     width(m, model.Long),
			LongLong: width(m, model.LongLong),
			Pointer:  width(m, model.Pointer),
		})
	}

	return doc, nil
}

// Write renders the table to w
func Write(w io.Writer, opts Options) error {
	doc, err := Build(opts)
	if err != nil {
		return err
	}

	switch opts.Format {
	case FormatText, "":
		if opts.Styled {
			return writeStyled(w, doc)
		}
		return writePlain(w, doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// IsTerminal reports whether w is a terminal, which is when Styled output is
// worth drawing.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func headers() []string {
	out := []string{"model"}
	for _, c := range model.Categories() {
		out = append(out, c.CName())
	}
	return out
}

func cells(e Entry) []string {
	out := []string{e.Name}
	for _, n := range []int{e.Char, e.Short, e.Int, e.Long, e.LongLong, e.Pointer} {
		out = append(out, strconv.Itoa(n))
	}
	return out
}

// writePlain emits one tab-separated line per row so cells containing spaces,
// like "long long", stay a single field.
func writePlain(w io.Writer, doc *Document) error {
	var b strings.Builder
	b.WriteString(strings.Join(headers(), "\t"))
	b.WriteByte('\n')
	for _, e := range doc.Models {
		b.WriteString(strings.Join(cells(e), "\t"))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "(%s)\n", doc.Unit)

	_, err := io.WriteString(w, b.String())
	return err
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	nameStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func writeStyled(w io.Writer, doc *Document) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return cellStyle
			}
		})
	for _, e := range doc.Models {
		t.Row(cells(e)...)
	}

	_, err := fmt.Fprintf(w, "%s\n(%s)\n", t.Render(), doc.Unit)
	return err
}
