// Package report renders saved timer blocks in several output formats.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/MeKo-Tech/perfmon/internal/perf"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Format names an output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// ErrUnknownFormat is returned by Render for unsupported formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Entry is the serialized form of a saved block.
type Entry struct {
	Name      string `json:"name" yaml:"name"`
	StartNS   int64  `json:"start_ns" yaml:"start_ns"`
	EndNS     int64  `json:"end_ns" yaml:"end_ns"`
	ElapsedNS int64  `json:"elapsed_ns" yaml:"elapsed_ns"`
	Elapsed   string `json:"elapsed" yaml:"elapsed"`
}

// Report is the document written for the json and yaml formats.
type Report struct {
	Blocks []Entry `json:"blocks" yaml:"blocks"`
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnknownFormat, s, Formats)
	}
	return f, nil
}

// Entries converts blocks into entries sorted by name.
func Entries(blocks map[string]perf.Block) []Entry {
	entries := make([]Entry, 0, len(blocks))
	for _, name := range slices.Sorted(maps.Keys(blocks)) {
		b := blocks[name]
		entries = append(entries, Entry{
			Name:      name,
			StartNS:   b.Start.Nanoseconds(),
			EndNS:     b.End.Nanoseconds(),
			ElapsedNS: b.Elapsed.Nanoseconds(),
			Elapsed:   b.Elapsed.String(),
		})
	}
	return entries
}

// Render writes blocks to w in the given format.
func Render(w io.Writer, blocks map[string]perf.Block, format Format) error {
	switch format {
	case FormatText:
		return renderText(w, blocks)
	case FormatTable:
		return renderTable(w, blocks)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Report{Blocks: Entries(blocks)})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Report{Blocks: Entries(blocks)}); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderText(w io.Writer, blocks map[string]perf.Block) error {
	for _, name := range slices.Sorted(maps.Keys(blocks)) {
		if _, err := fmt.Fprintln(w, blocks[name].Line(name)); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, blocks map[string]perf.Block) error {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(w)
	table.Header("Block", "Start", "End", "Elapsed", "Elapsed ns")

	for _, e := range Entries(blocks) {
		err := table.Append(
			e.Name,
			perf.FormatReading(blocks[e.Name].Start),
			perf.FormatReading(blocks[e.Name].End),
			e.Elapsed,
			p.Sprintf("%d", e.ElapsedNS),
		)
		if err != nil {
			return fmt.Errorf("failed to append row %s: %w", e.Name, err)
		}
	}

	return table.Render()
}
