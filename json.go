package tableoutput

import (
	"encoding/json"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// record maps each header to the cell of one data row, in header order.
type record = orderedmap.OrderedMap[string, string]

func records(t *Table) []*record {
	header := t.header()
	out := make([]*record, 0, t.Len())
	for _, row := range t.data() {
		rec := orderedmap.New[string, string]()
		for i, h := range header {
			rec.Set(h, row[i])
		}
		out = append(out, rec)
	}
	return out
}

func writeJSON(w io.Writer, t *Table, o options) error {
	enc := json.NewEncoder(w)
	if o.indent != "" {
		enc.SetIndent("", o.indent)
	}
	return enc.Encode(records(t))
}

func writeJSONL(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	for _, rec := range records(t) {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
