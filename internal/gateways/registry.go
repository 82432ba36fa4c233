// Package gateways is the single source of truth for translating between
// the three representations of a payment gateway: the opaque id shown to
// merchants, the canonical backend name, and the per-gateway request
// policy. Real gateway names never reach the UI.
package gateways

import (
	"fmt"
	"strings"
)

// Descriptor holds one supported gateway. Everything except ID and
// CanonicalName is presentation metadata with no behavioral effect.
type Descriptor struct {
	ID            string   `json:"id"`
	CanonicalName string   `json:"-"`
	DisplayName   string   `json:"displayName"`
	Description   string   `json:"description"`
	FeatureTags   []string `json:"features"`
	ColorTag      string   `json:"color"`
	FeeRate       string   `json:"fee"`
	PayoutTerm    string   `json:"payout"`
}

// Registry is immutable after construction. Lookups are total: unknown
// names and ids pass through unchanged, because gateway identity strings
// arrive from an upstream whose casing and spelling this codebase does
// not control. A registry that failed on unknown input would turn every
// list-rendering call site into a failure point.
type Registry struct {
	byID  map[string]Descriptor
	idFor map[string]string
	order []string
}

func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]Descriptor, len(descriptors)),
		idFor: make(map[string]string, len(descriptors)*2),
		order: make([]string, 0, len(descriptors)),
	}

	for _, d := range descriptors {
		if d.ID == "" || d.CanonicalName == "" {
			return nil, fmt.Errorf("gateway descriptor needs both id and name, got id=%q name=%q", d.ID, d.CanonicalName)
		}

		if _, exists := r.byID[d.ID]; exists {
			return nil, fmt.Errorf("duplicate gateway id %s", d.ID)
		}

		lower := strings.ToLower(d.CanonicalName)
		if _, exists := r.idFor[lower]; exists {
			return nil, fmt.Errorf("duplicate gateway name %s", d.CanonicalName)
		}

		r.byID[d.ID] = d
		// both spellings, the upstream emits either
		r.idFor[d.CanonicalName] = d.ID
		r.idFor[lower] = d.ID
		r.order = append(r.order, d.ID)
	}

	return r, nil
}

// NewDefaultRegistry returns a registry over the compiled-in catalog.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(defaultCatalog)
	if err != nil {
		// the compiled-in catalog is covered by tests, this cannot happen
		panic(err)
	}

	return r
}

var defaultCatalog = []Descriptor{
	{
		ID:            "0001",
		CanonicalName: "Plisio",
		DisplayName:   "Cryptocurrency (Global)",
		Description:   "Modern payment infrastructure - ID: 0001",
		FeatureTags:   []string{"Crypto"},
		ColorTag:      "bg-orange-500",
		FeeRate:       "10%",
		PayoutTerm:    "T+5",
	},
	{
		ID:            "0010",
		CanonicalName: "Rapyd",
		DisplayName:   "Bank Card (Visa, Master, AmEx, Maestro)",
		Description:   "Global payment processing - ID: 0010",
		FeatureTags:   []string{"Multi-currency"},
		ColorTag:      "bg-purple-500",
		FeeRate:       "10%",
		PayoutTerm:    "T+5",
	},
	{
		ID:            "0100",
		CanonicalName: "CoinToPay",
		DisplayName:   "Open Banking (EU) + SEPA",
		Description:   "Digital payment solutions - ID: 0100",
		FeatureTags:   []string{"EUR", "SEPA"},
		ColorTag:      "bg-green-500",
		FeeRate:       "10%",
		PayoutTerm:    "T+5",
	},
	{
		ID:            "1000",
		CanonicalName: "Noda",
		DisplayName:   "Open Banking (EU)",
		Description:   "Modern payment infrastructure - ID: 1000",
		FeatureTags:   []string{"EUR", "SEPA"},
		ColorTag:      "bg-blue-500",
		FeeRate:       "10%",
		PayoutTerm:    "T+5",
	},
}

// IDFromName resolves a canonical name to the opaque id. Exact match
// first, then lower-cased, then the input itself.
func (r *Registry) IDFromName(name string) string {
	if name == "" {
		return ""
	}

	if id, ok := r.idFor[name]; ok {
		return id
	}

	if id, ok := r.idFor[strings.ToLower(name)]; ok {
		return id
	}

	return name
}

// NameFromID resolves an opaque id to the canonical name, or returns the
// input unchanged. The id side is matched exactly.
func (r *Registry) NameFromID(id string) string {
	if id == "" {
		return ""
	}

	if d, ok := r.byID[id]; ok {
		return d.CanonicalName
	}

	return id
}

// Describe returns the display metadata for a gateway id.
func (r *Registry) Describe(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// DisplayLabel returns the display name for an id, synthesizing a label
// for ids the registry does not know.
func (r *Registry) DisplayLabel(id string) string {
	if d, ok := r.byID[id]; ok {
		return d.DisplayName
	}

	return "Gateway " + id
}

func (r *Registry) AllIDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *Registry) AllNames() []string {
	names := make([]string, 0, len(r.order))
	for _, id := range r.order {
		names = append(names, r.byID[id].CanonicalName)
	}

	return names
}

// AllDescriptors returns the catalog in registration order.
func (r *Registry) AllDescriptors() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		descriptors = append(descriptors, r.byID[id])
	}

	return descriptors
}

// NamesToIDs maps a list of canonical names to ids, dropping empty
// inputs and empty results. Order is preserved, unmappable names pass
// through via the identity fallback.
func (r *Registry) NamesToIDs(names []string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}

		if id := r.IDFromName(name); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

// IDsToNames is the symmetric filter-and-map.
func (r *Registry) IDsToNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}

		if name := r.NameFromID(id); name != "" {
			names = append(names, name)
		}
	}

	return names
}
