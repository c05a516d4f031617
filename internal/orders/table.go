package orders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table is an immutable order lookup table keyed by canonical order key.
type Table struct {
	records map[string]Record
	keys    []string
}

// NewTable builds a table from records. Later duplicates replace earlier ones
// but keep the first position in Keys.
func NewTable(records []Record) *Table {
	t := &Table{records: make(map[string]Record, len(records))}
	for _, r := range records {
		if _, dup := t.records[r.Key]; !dup {
			t.keys = append(t.keys, r.Key)
		}
		t.records[r.Key] = r
	}
	return t
}

// Lookup normalizes raw and returns a copy of the matching record.
func (t *Table) Lookup(raw string) (*Record, error) {
	key, ok := Normalize(raw)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an order reference", ErrNotFound, raw)
	}
	r, ok := t.records[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return &r, nil
}

// Keys returns the canonical keys in load order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.keys) }

// SampleTable returns the built-in demo orders.
func SampleTable() *Table {
	return NewTable([]Record{
		{
			Key:               "ORD-12345",
			Status:            StatusShipped,
			Product:           "TechBook Pro TB2024",
			Carrier:           "UPS",
			TrackingNumber:    "1Z999AA10123456784",
			EstimatedDelivery: "2024-01-15",
			ShippingAddress:   "123 Main St, City, State 12345",
		},
		{
			Key:             "ORD-67890",
			Status:          StatusDelivered,
			Product:         "SmartPhone X SPX13",
			Carrier:         "FedEx",
			TrackingNumber:  "789012345678",
			DeliveryDate:    "2024-01-10",
			ShippingAddress: "456 Oak Ave, City, State 12345",
		},
		{
			Key:               "ORD-11111",
			Status:            StatusProcessing,
			Product:           "Wireless Earbuds WE300",
			Carrier:           "USPS",
			EstimatedDelivery: "2024-01-18",
			ShippingAddress:   "789 Pine Rd, City, State 12345",
		},
	})
}

// LoadFile reads a YAML or JSON mapping of order key to record. Keys are
// normalized, so "12345" and "ORD-12345" name the same order.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading orders %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing orders %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return NewTable(nil), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing orders %s: top level must be a mapping", path)
	}

	var records []Record
	for i := 0; i+1 < len(root.Content); i += 2 {
		rawKey := root.Content[i].Value
		var r Record
		if err := root.Content[i+1].Decode(&r); err != nil {
			return nil, fmt.Errorf("decoding order %q in %s: %w", rawKey, path, err)
		}
		key, ok := Normalize(rawKey)
		if !ok {
			return nil, fmt.Errorf("%w: key %q in %s", ErrInvalidRecord, rawKey, path)
		}
		r.Key = key
		if err := r.Validate(); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return NewTable(records), nil
}
