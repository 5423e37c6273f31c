package pointio

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Writer encodes converted pairs.
type Writer struct {
	Format    string
	Precision int
	// XName and YName label the two columns, "x"/"y" when empty.
	XName, YName string
}

// record is one json or yaml point with keys in x-then-y order.
// Non-transformable coordinates are null.
type record struct {
	names  [2]string
	values [2]*float64
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.names[i])
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i := range r.names {
		value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if r.values[i] != nil {
			value = &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(*r.values[i], 'f', -1, 64)}
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.names[i]},
			value,
		)
	}
	return node, nil
}

// Write encodes pairs to w in the configured format.
func (wr Writer) Write(w io.Writer, pairs Pairs) error {
	if len(pairs.X) != len(pairs.Y) {
		return fmt.Errorf("write points: %d x values, %d y values", len(pairs.X), len(pairs.Y))
	}

	switch wr.Format {
	case "", FormatCSV:
		return wr.writeCSV(w, pairs)
	case FormatJSON:
		return wr.writeJSON(w, pairs)
	case FormatYAML:
		return wr.writeYAML(w, pairs)
	}
	return fmt.Errorf("unsupported output format %q", wr.Format)
}

func (wr Writer) names() (string, string) {
	x, y := wr.XName, wr.YName
	if x == "" {
		x = "x"
	}
	if y == "" {
		y = "y"
	}
	return x, y
}

func (wr Writer) writeCSV(w io.Writer, pairs Pairs) error {
	cw := csv.NewWriter(w)
	xName, yName := wr.names()
	if err := cw.Write([]string{xName, yName}); err != nil {
		return err
	}
	for i := range pairs.X {
		record := []string{wr.formatFloat(pairs.X[i]), wr.formatFloat(pairs.Y[i])}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (wr Writer) formatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', wr.Precision, 64)
}

func (wr Writer) records(pairs Pairs) []record {
	xName, yName := wr.names()
	out := make([]record, len(pairs.X))
	for i := range pairs.X {
		out[i] = record{
			names:  [2]string{xName, yName},
			values: [2]*float64{finite(pairs.X[i]), finite(pairs.Y[i])},
		}
	}
	return out
}

func (wr Writer) writeJSON(w io.Writer, pairs Pairs) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(wr.records(pairs))
}

func (wr Writer) writeYAML(w io.Writer, pairs Pairs) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(wr.records(pairs)); err != nil {
		return err
	}
	return enc.Close()
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
