// Package resolve links authoritative regulator records to auxiliary
// directory records. The two datasets share no reliable key, so linkage runs
// through an ordered cascade of composite-key and fuzzy-name strategies over
// a prebuilt index.
package resolve

import (
	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/normalize"
)

const keySep = "|"

// Index holds the composite-key lookups over one auxiliary batch. Built once
// per batch, read-only afterwards, safe for concurrent lookups.
type Index struct {
	byNamePostcode map[string]*domain.AuxiliaryRecord
	byNameCity     map[string]*domain.AuxiliaryRecord
	byPhone        map[string]*domain.AuxiliaryRecord
	byPostcode     map[string][]*domain.AuxiliaryRecord
}

// BuildIndex constructs the auxiliary lookup index. On a key collision the
// record carrying more populated fields wins; equal richness keeps the
// first-seen record, so the build is deterministic for a given input order.
func BuildIndex(records []domain.AuxiliaryRecord) *Index {
	idx := &Index{
		byNamePostcode: make(map[string]*domain.AuxiliaryRecord),
		byNameCity:     make(map[string]*domain.AuxiliaryRecord),
		byPhone:        make(map[string]*domain.AuxiliaryRecord),
		byPostcode:     make(map[string][]*domain.AuxiliaryRecord),
	}

	for i := range records {
		rec := &records[i]
		name := normalize.Text(rec.Name)
		postcode := normalize.Postcode(rec.Postcode)
		city := normalize.Text(rec.City)
		phone := normalize.Phone(rec.Phone)

		if name != "" && postcode != "" {
			insertRicher(idx.byNamePostcode, name+keySep+postcode, rec)
		}
		if name != "" && city != "" {
			insertRicher(idx.byNameCity, name+keySep+city, rec)
		}
		if phone != "" {
			insertRicher(idx.byPhone, phone, rec)
		}
		if postcode != "" {
			idx.byPostcode[postcode] = append(idx.byPostcode[postcode], rec)
		}
	}

	return idx
}

// insertRicher keeps the record with the strictly greater non-null field
// count; ties keep the incumbent.
func insertRicher(m map[string]*domain.AuxiliaryRecord, key string, rec *domain.AuxiliaryRecord) {
	existing, ok := m[key]
	if !ok || rec.FieldCount() > existing.FieldCount() {
		m[key] = rec
	}
}
