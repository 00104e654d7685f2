package attachments_test

import (
	"testing"

	"github.com/goliatone/go-cellpaste/internal/attachments"
)

const pngMime = "image/png"

func TestChooseEmptyStore(t *testing.T) {
	name, updated := attachments.Choose(nil, "X", "img", ".png", pngMime)
	if name != "img.png" {
		t.Fatalf("expected img.png got %q", name)
	}
	if len(updated) != 1 {
		t.Fatalf("expected single entry store, got %d entries", len(updated))
	}
	if updated["img.png"][pngMime] != "X" {
		t.Fatalf("unexpected stored payload %q", updated["img.png"][pngMime])
	}
}

func TestChooseReusesNameForIdenticalContent(t *testing.T) {
	store := attachments.Store{
		"img.png": {pngMime: "X"},
	}
	name, updated := attachments.Choose(store, "X", "img", ".png", pngMime)
	if name != "img.png" {
		t.Fatalf("expected content reuse of img.png, got %q", name)
	}
	if len(updated) != 1 {
		t.Fatalf("expected store to keep a single entry, got %d", len(updated))
	}
}

func TestChooseSuffixesOnCollision(t *testing.T) {
	store := attachments.Store{
		"img.png": {pngMime: "X"},
	}
	name, updated := attachments.Choose(store, "Y", "img", ".png", pngMime)
	if name != "img-2.png" {
		t.Fatalf("expected img-2.png got %q", name)
	}
	if updated["img-2.png"][pngMime] != "Y" {
		t.Fatalf("expected payload Y under img-2.png")
	}
	if updated["img.png"][pngMime] != "X" {
		t.Fatalf("occupant entry must stay untouched")
	}

	name, updated = attachments.Choose(updated, "Z", "img", ".png", pngMime)
	if name != "img-3.png" {
		t.Fatalf("expected img-3.png got %q", name)
	}
	if len(updated) != 3 {
		t.Fatalf("expected three entries got %d", len(updated))
	}
}

func TestChooseSuffixSkipsIntermediateReuse(t *testing.T) {
	// img.png differs, img-2.png already holds the incoming payload: the
	// collision walk lands on img-2.png and reuses it.
	store := attachments.Store{
		"img.png":   {pngMime: "A"},
		"img-2.png": {pngMime: "B"},
	}
	name, updated := attachments.Choose(store, "B", "img", ".png", pngMime)
	if name != "img-2.png" {
		t.Fatalf("expected reuse of img-2.png got %q", name)
	}
	if len(updated) != 2 {
		t.Fatalf("expected two entries got %d", len(updated))
	}
}

func TestChooseTreatsEmptyRecordAsVacant(t *testing.T) {
	store := attachments.Store{
		"img.png": {},
	}
	name, updated := attachments.Choose(store, "X", "img", ".png", pngMime)
	if name != "img.png" {
		t.Fatalf("expected empty record to be overwritten, got %q", name)
	}
	if updated["img.png"][pngMime] != "X" {
		t.Fatalf("expected payload written into vacated record")
	}
}

func TestChooseDifferentMimeEntryCollides(t *testing.T) {
	// The occupant stores a payload under another MIME type only; content
	// identity cannot be established so the name is suffixed.
	store := attachments.Store{
		"img.png": {"image/jpeg": "X"},
	}
	name, _ := attachments.Choose(store, "X", "img", ".png", pngMime)
	if name != "img-2.png" {
		t.Fatalf("expected img-2.png got %q", name)
	}
}

func TestChooseSuffixesWhenPayloadShapeUnknown(t *testing.T) {
	// The occupant's payload is serialized in a shape the store cannot
	// compare against, so the name counts as occupied rather than vacant.
	meta := map[string]any{
		"custom": map[string]any{
			"attachments": map[string]any{
				"img.png": map[string]any{pngMime: 7},
			},
		},
	}
	store := attachments.FromMetadata(meta)
	name, _ := attachments.Choose(store, "X", "img", ".png", pngMime)
	if name != "img-2.png" {
		t.Fatalf("expected img-2.png got %q", name)
	}
}

func TestChooseReusesNameAgainstChunkedPayload(t *testing.T) {
	meta := map[string]any{
		"custom": map[string]any{
			"attachments": map[string]any{
				"img.png": map[string]any{pngMime: []any{"iV", "BORw=="}},
			},
		},
	}
	store := attachments.FromMetadata(meta)
	name, _ := attachments.Choose(store, "iVBORw==", "img", ".png", pngMime)
	if name != "img.png" {
		t.Fatalf("expected content reuse against chunked payload, got %q", name)
	}
}

func TestChooseDoesNotMutateInput(t *testing.T) {
	store := attachments.Store{
		"img.png": {pngMime: "X"},
	}
	_, updated := attachments.Choose(store, "Y", "img", ".png", pngMime)
	if len(store) != 1 {
		t.Fatalf("input store mutated: %d entries", len(store))
	}
	updated["img.png"][pngMime] = "tampered"
	if store["img.png"][pngMime] != "X" {
		t.Fatalf("updated store shares record maps with input")
	}
}
