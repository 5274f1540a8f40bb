package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

type OutputFormat string

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatText, OutputFormatJSON}
)

type printer struct {
	format OutputFormat
	w      io.Writer
	bold   *color.Color
	italic *color.Color
}

func newPrinter(format OutputFormat, w io.Writer) *printer {
	return &printer{
		format: format,
		w:      w,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
	}
}

func (p *printer) printEntry(entry dictionary.Entry) error {
	if p.format == OutputFormatJSON {
		return p.printJSON(entry)
	}
	if _, err := p.bold.Fprint(p.w, entry.Word); err != nil {
		return fmt.Errorf("bold.Fprint > %w", err)
	}
	if _, err := fmt.Fprintf(p.w, ": %s\n", entry.Definition); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	return nil
}

type recordedOutput struct {
	Word    string `json:"word"`
	Message string `json:"message"`
}

func (p *printer) printRecorded(word, message string) error {
	if p.format == OutputFormatJSON {
		return p.printJSON(recordedOutput{Word: word, Message: message})
	}
	if _, err := p.italic.Fprintln(p.w, message); err != nil {
		return fmt.Errorf("italic.Fprintln > %w", err)
	}
	return nil
}

func (p *printer) printJSON(v any) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	return nil
}
