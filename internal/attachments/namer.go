package attachments

import "strconv"

// Choose settles the filename under which a new payload is stored and returns
// the updated store. The first candidate is base+ext. When the candidate is
// taken, the occupant's payload for the incoming MIME type is compared: an
// identical payload reuses the name so repeated pastes of the same image do
// not duplicate the blob. Otherwise the candidate is regenerated as
// base-N+ext with N counting up from 2 until a free name is found.
//
// A colliding record with no MIME entries is treated as vacant and
// overwritten. Records whose stored payloads cannot be compared (unrecognized
// serialized shapes) count as occupied and force the suffix walk. The input
// store is never mutated.
func Choose(store Store, payload, base, ext, mime string) (string, Store) {
	name := base + ext
	if len(store) == 0 {
		return name, Store{name: Record{mime: payload}}
	}

	updated := Clone(store)
	for suffix := 2; ; suffix++ {
		existing, taken := updated[name]
		if !taken || len(existing) == 0 {
			break
		}
		if stored, ok := existing[mime]; ok && stored == payload {
			break
		}
		name = base + "-" + strconv.Itoa(suffix) + ext
	}

	updated[name] = Record{mime: payload}
	return name, updated
}
