package interchange

import (
	"encoding/json"
	"strings"
)

// Document is the nested element structure graphs are built from and
// exported back into.
type Document struct {
	Elements Elements `json:"elements"`
}

// Elements holds the node and edge records of a document.
type Elements struct {
	Nodes []NodeElement `json:"nodes"`
	Edges []EdgeElement `json:"edges"`
}

// NodeElement wraps a node's data record.
type NodeElement struct {
	Data NodeData `json:"data"`
}

// EdgeElement wraps an edge's data record.
type EdgeElement struct {
	Data EdgeData `json:"data"`
}

// NodeData is a node record: the fixed id/labels fields plus an open bag
// of additional attributes that round-trip untouched.
//
// Labels is nil when the input carried no labels key at all, and an empty
// slice when the key was present but empty. Validation relies on the
// distinction.
type NodeData struct {
	ID     string
	Labels []string
	Extra  map[string]any
}

// EdgeData is an edge record. Label holds the single relation label;
// Labels holds the original multi-label form when the input used one.
// Extra carries every other attribute unchanged.
type EdgeData struct {
	Source string
	Target string
	Label  string
	Labels []string
	Extra  map[string]any
}

// UnmarshalJSON splits the fixed node fields from the open attribute bag.
func (d *NodeData) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = NodeData{}
	for key, val := range raw {
		switch key {
		case "id":
			if err := json.Unmarshal(val, &d.ID); err != nil {
				return err
			}
		case "labels":
			if string(val) == "null" {
				continue
			}
			labels := []string{}
			if err := json.Unmarshal(val, &labels); err != nil {
				return err
			}
			d.Labels = labels
		default:
			var v any
			if err := json.Unmarshal(val, &v); err != nil {
				return err
			}
			if d.Extra == nil {
				d.Extra = make(map[string]any)
			}
			d.Extra[key] = v
		}
	}
	return nil
}

// MarshalJSON reassembles the fixed fields and the attribute bag into a
// single flat object.
func (d NodeData) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Extra)+2)
	for k, v := range d.Extra {
		out[k] = v
	}
	out["id"] = d.ID
	if d.Labels != nil {
		out["labels"] = d.Labels
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits the fixed edge fields from the open attribute bag.
func (d *EdgeData) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = EdgeData{}
	for key, val := range raw {
		switch key {
		case "source":
			if err := json.Unmarshal(val, &d.Source); err != nil {
				return err
			}
		case "target":
			if err := json.Unmarshal(val, &d.Target); err != nil {
				return err
			}
		case "label":
			if err := json.Unmarshal(val, &d.Label); err != nil {
				return err
			}
		case "labels":
			if string(val) == "null" {
				continue
			}
			labels := []string{}
			if err := json.Unmarshal(val, &labels); err != nil {
				return err
			}
			d.Labels = labels
		default:
			var v any
			if err := json.Unmarshal(val, &v); err != nil {
				return err
			}
			if d.Extra == nil {
				d.Extra = make(map[string]any)
			}
			d.Extra[key] = v
		}
	}
	return nil
}

// MarshalJSON reassembles the fixed fields and the attribute bag into a
// single flat object.
func (d EdgeData) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Extra)+4)
	for k, v := range d.Extra {
		out[k] = v
	}
	out["source"] = d.Source
	out["target"] = d.Target
	if d.Label != "" {
		out["label"] = d.Label
	}
	if d.Labels != nil {
		out["labels"] = d.Labels
	}
	return json.Marshal(out)
}

// Normalize collapses multi-label edges into a single composite label,
// joining the labels with "," and writing the result back into the label
// field. Applied once before a graph is built; edges that already carry a
// label are left alone.
func (doc *Document) Normalize() {
	for i := range doc.Elements.Edges {
		data := &doc.Elements.Edges[i].Data
		if data.Label == "" && data.Labels != nil {
			data.Label = strings.Join(data.Labels, ",")
		}
	}
}
