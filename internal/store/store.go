// ABOUTME: Tenant-scoped document store contract.
// ABOUTME: Defines Record, the Store interface, and list options.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Record is one stored document. Data is the raw JSON body; the id is kept
// out of the body so implementations stay schemaless.
type Record struct {
	ID   string
	Data json.RawMessage
}

// Decode unmarshals the record body into v.
func (r Record) Decode(v any) error {
	return json.Unmarshal(r.Data, v)
}

// Field returns the named top-level field of the document as a string, or ""
// when absent. Numbers are rendered without a trailing ".0" ambiguity only as
// far as fmt does; filters in this codebase compare string-valued fields
// (dates, ids, statuses).
func (r Record) Field(name string) string {
	var doc map[string]any
	if err := json.Unmarshal(r.Data, &doc); err != nil {
		return ""
	}
	return fieldString(doc, name)
}

func fieldString(doc map[string]any, name string) string {
	v, ok := doc[name]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ListOptions collects the supported query refinements: top-level field
// equality filters plus a client-side sort. Filtering and ordering happen in
// memory after the tenant-scoped fetch; the store never requires composite
// indexes.
type ListOptions struct {
	Filters   []FieldFilter
	SortField string
	SortDesc  bool
	Limit     int
}

// FieldFilter is a single field == value condition.
type FieldFilter struct {
	Field string
	Value string
}

// ListOption configures a List call.
type ListOption func(*ListOptions)

// WhereEq filters on a top-level document field by string equality.
func WhereEq(field, value string) ListOption {
	return func(o *ListOptions) {
		o.Filters = append(o.Filters, FieldFilter{Field: field, Value: value})
	}
}

// SortBy orders results by a top-level field. ISO dates and zero-padded times
// sort correctly as strings.
func SortBy(field string, desc bool) ListOption {
	return func(o *ListOptions) {
		o.SortField = field
		o.SortDesc = desc
	}
}

// Limit caps the number of results after filtering and sorting.
func Limit(n int) ListOption {
	return func(o *ListOptions) { o.Limit = n }
}

// BuildListOptions folds the option funcs into a ListOptions value.
func BuildListOptions(opts []ListOption) ListOptions {
	var o ListOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Store is the tenant-scoped document CRUD contract. A tenantID of "" on List
// scans across tenants; that unscoped form exists solely for identity
// resolution, every feature path passes a concrete tenant.
type Store interface {
	List(ctx context.Context, collection, tenantID string, opts ...ListOption) ([]Record, error)
	Get(ctx context.Context, collection, tenantID, id string) (Record, error)
	Create(ctx context.Context, collection, tenantID, id string, data []byte) error
	Update(ctx context.Context, collection, tenantID, id string, patch []byte) error
	Delete(ctx context.Context, collection, tenantID, id string) error

	// Watch delivers a full snapshot of the tenant's collection on every
	// matching-document change, starting with the current state. The channel
	// closes when ctx is done.
	Watch(ctx context.Context, collection, tenantID string) (<-chan []Record, error)

	Close() error
}

// ApplyListOptions filters, sorts, and limits records in memory. Shared by
// implementations so query semantics cannot drift between them.
func ApplyListOptions(records []Record, o ListOptions) []Record {
	out := records[:0:0]
	for _, r := range records {
		if matchesFilters(r, o.Filters) {
			out = append(out, r)
		}
	}

	if o.SortField != "" {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].Field(o.SortField), out[j].Field(o.SortField)
			if o.SortDesc {
				return a > b
			}
			return a < b
		})
	}

	if o.Limit > 0 && len(out) > o.Limit {
		out = out[:o.Limit]
	}
	return out
}

func matchesFilters(r Record, filters []FieldFilter) bool {
	if len(filters) == 0 {
		return true
	}
	var doc map[string]any
	if err := json.Unmarshal(r.Data, &doc); err != nil {
		return false
	}
	for _, f := range filters {
		if fieldString(doc, f.Field) != f.Value {
			return false
		}
	}
	return true
}

// MergePatch applies a shallow JSON merge of patch onto existing, the
// update-in-place semantics of the legacy document SDK.
func MergePatch(existing, patch []byte) ([]byte, error) {
	var base map[string]json.RawMessage
	if err := json.Unmarshal(existing, &base); err != nil {
		return nil, fmt.Errorf("merge existing document: %w", err)
	}
	var delta map[string]json.RawMessage
	if err := json.Unmarshal(patch, &delta); err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	if base == nil {
		base = map[string]json.RawMessage{}
	}
	for k, v := range delta {
		base[k] = v
	}
	return json.Marshal(base)
}
