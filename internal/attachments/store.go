// Package attachments models the image attachment map embedded in a notebook
// cell's metadata under custom.attachments. The host hands metadata over as an
// untyped map; this package projects it into a typed store, mutates a copy,
// and writes the result back without disturbing unrelated keys or the original
// serialized form of entries the operation did not change.
package attachments

import (
	"maps"
	"strings"
)

const (
	customKey      = "custom"
	attachmentsKey = "attachments"
)

// opaquePayload stands in for payload values whose serialized shape the module
// does not understand. It contains a byte outside both base64 alphabets so it
// can never compare equal to an encoded payload, which makes the owning name
// collide instead of being overwritten.
const opaquePayload = "\x00"

// Record maps a MIME type (e.g. "image/png") to the base64 payload stored for
// that type. Records written by this module carry exactly one entry.
type Record map[string]string

// Store maps attachment filenames to their embedded records. Filenames are
// unique within a cell.
type Store map[string]Record

// FromMetadata extracts the attachment store embedded in cell metadata.
// Missing nesting levels or non-conforming containers yield an empty store;
// the caller always receives a snapshot it can hand to Choose safely.
//
// Payloads serialized as a list of string chunks are joined into a single
// string so content comparison works against them. Any other payload shape is
// represented by an opaque marker: the name still counts as occupied and its
// original value survives an Apply round trip untouched.
func FromMetadata(meta map[string]any) Store {
	if meta == nil {
		return nil
	}
	custom, ok := meta[customKey].(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := custom[attachmentsKey].(map[string]any)
	if !ok {
		return nil
	}

	store := make(Store, len(raw))
	for name, value := range raw {
		store[name] = recordFromRaw(value)
	}
	return store
}

func recordFromRaw(value any) Record {
	entry, ok := value.(map[string]any)
	if !ok {
		return Record{"": opaquePayload}
	}
	record := make(Record, len(entry))
	for mime, payload := range entry {
		record[mime] = payloadString(payload)
	}
	return record
}

func payloadString(payload any) string {
	switch v := payload.(type) {
	case string:
		return v
	case []any:
		var joined strings.Builder
		for _, chunk := range v {
			text, ok := chunk.(string)
			if !ok {
				return opaquePayload
			}
			joined.WriteString(text)
		}
		return joined.String()
	}
	return opaquePayload
}

// Apply returns a copy of meta with the store written under
// custom.attachments. Names whose record still matches the stored entry keep
// their original serialized value (chunked payload lists included); only
// diverging records are re-serialized. Names absent from the store are
// dropped. Missing nesting levels are created and every other key on the
// metadata and on the custom container is preserved. The input map is never
// mutated.
func Apply(meta map[string]any, store Store) map[string]any {
	updated := make(map[string]any, len(meta)+1)
	maps.Copy(updated, meta)

	var custom map[string]any
	var existingRaw map[string]any
	if existing, ok := updated[customKey].(map[string]any); ok {
		custom = make(map[string]any, len(existing)+1)
		maps.Copy(custom, existing)
		existingRaw, _ = existing[attachmentsKey].(map[string]any)
	} else {
		custom = make(map[string]any, 1)
	}

	raw := make(map[string]any, len(store))
	for name, record := range store {
		if original, ok := existingRaw[name]; ok && maps.Equal(record, recordFromRaw(original)) {
			raw[name] = original
			continue
		}
		entry := make(map[string]any, len(record))
		for mime, payload := range record {
			if mime == "" && payload == opaquePayload {
				continue
			}
			entry[mime] = payload
		}
		raw[name] = entry
	}

	custom[attachmentsKey] = raw
	updated[customKey] = custom
	return updated
}

// Clone performs a deep copy of the store so callers never share record maps.
func Clone(src Store) Store {
	if src == nil {
		return nil
	}
	cloned := make(Store, len(src))
	for name, record := range src {
		cloned[name] = CloneRecord(record)
	}
	return cloned
}

// CloneRecord copies a single attachment record.
func CloneRecord(src Record) Record {
	if src == nil {
		return nil
	}
	return maps.Clone(src)
}
