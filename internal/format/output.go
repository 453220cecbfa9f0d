package format

import (
	"fmt"
	"io"

	"ndo-cli/internal/model"

	json "github.com/goccy/go-json"
)

// Document is the machine-readable shape of a list used by `ndo export`.
type Document struct {
	File  string       `json:"file,omitempty"`
	Count int          `json:"count"`
	Items []ExportItem `json:"items"`
}

type ExportItem struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Kind      string `json:"kind"`
	Completed bool   `json:"completed,omitempty"`
	Color     string `json:"color,omitempty"`
	Indent    int    `json:"indent"`
}

func NewDocument(file string, items []model.Item) Document {
	doc := Document{File: file, Count: len(items), Items: make([]ExportItem, 0, len(items))}
	for i, it := range items {
		x := ExportItem{
			Index:     i,
			Text:      it.Text,
			Kind:      it.Kind.String(),
			Completed: it.Completed,
			Indent:    it.Indent,
		}
		if it.Color != model.ColorNone {
			x.Color = it.Color.String()
		}
		doc.Items = append(doc.Items, x)
	}
	return doc
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - edn
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
