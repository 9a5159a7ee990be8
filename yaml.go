package tableoutput

import (
	"io"

	"gopkg.in/yaml.v3"
)

// recordsNode builds the YAML sequence of data rows. Nodes are used instead of
// maps so keys keep header order.
func recordsNode(t *Table) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	header := t.header()
	for _, row := range t.data() {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, h := range header {
			m.Content = append(m.Content, strNode(h), strNode(row[i]))
		}
		seq.Content = append(seq.Content, m)
	}
	return seq
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func writeYAML(w io.Writer, t *Table, o options) error {
	enc := yaml.NewEncoder(w)
	if len(o.indent) > 0 {
		enc.SetIndent(len(o.indent))
	}
	if err := enc.Encode(recordsNode(t)); err != nil {
		return err
	}
	return enc.Close()
}
