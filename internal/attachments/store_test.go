package attachments_test

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-cellpaste/internal/attachments"
)

func TestFromMetadataMissingNesting(t *testing.T) {
	if store := attachments.FromMetadata(nil); store != nil {
		t.Fatalf("expected nil store for nil metadata")
	}
	if store := attachments.FromMetadata(map[string]any{}); store != nil {
		t.Fatalf("expected nil store when custom container is absent")
	}
	meta := map[string]any{"custom": map[string]any{}}
	if store := attachments.FromMetadata(meta); store != nil {
		t.Fatalf("expected nil store when attachments container is absent")
	}
}

func TestFromMetadataExtractsRecords(t *testing.T) {
	meta := map[string]any{
		"custom": map[string]any{
			"attachments": map[string]any{
				"img.png": map[string]any{
					"image/png": "payload",
				},
				"broken": "not a record",
			},
		},
	}
	store := attachments.FromMetadata(meta)
	if len(store) != 2 {
		t.Fatalf("expected every name to stay occupied, got %d records", len(store))
	}
	if store["img.png"]["image/png"] != "payload" {
		t.Fatalf("unexpected payload %q", store["img.png"]["image/png"])
	}
	if len(store["broken"]) == 0 {
		t.Fatalf("non-conforming entry must still occupy its name")
	}
}

func TestFromMetadataJoinsChunkedPayloads(t *testing.T) {
	meta := map[string]any{
		"custom": map[string]any{
			"attachments": map[string]any{
				"img.png": map[string]any{
					"image/png": []any{"iVBO", "Rw=="},
				},
			},
		},
	}
	store := attachments.FromMetadata(meta)
	if store["img.png"]["image/png"] != "iVBORw==" {
		t.Fatalf("expected joined chunks, got %q", store["img.png"]["image/png"])
	}
}

func TestApplyCreatesNesting(t *testing.T) {
	store := attachments.Store{
		"img.png": {"image/png": "payload"},
	}
	updated := attachments.Apply(nil, store)

	custom, ok := updated["custom"].(map[string]any)
	if !ok {
		t.Fatalf("expected custom container to be created")
	}
	raw, ok := custom["attachments"].(map[string]any)
	if !ok {
		t.Fatalf("expected attachments container to be created")
	}
	entry, ok := raw["img.png"].(map[string]any)
	if !ok || entry["image/png"] != "payload" {
		t.Fatalf("unexpected attachment entry %v", raw["img.png"])
	}
}

func TestApplyPreservesUnrelatedKeys(t *testing.T) {
	meta := map[string]any{
		"kernel": "python3",
		"custom": map[string]any{
			"tags":        []any{"a", "b"},
			"attachments": map[string]any{"old.png": map[string]any{"image/png": "old"}},
		},
	}
	store := attachments.FromMetadata(meta)
	name, store := attachments.Choose(store, "new", "img", ".png", "image/png")
	updated := attachments.Apply(meta, store)

	if updated["kernel"] != "python3" {
		t.Fatalf("top level key dropped")
	}
	custom := updated["custom"].(map[string]any)
	if _, ok := custom["tags"]; !ok {
		t.Fatalf("custom sibling key dropped")
	}
	raw := custom["attachments"].(map[string]any)
	if len(raw) != 2 {
		t.Fatalf("expected old and new attachments got %d", len(raw))
	}
	if _, ok := raw[name]; !ok {
		t.Fatalf("chosen attachment %q missing", name)
	}

	// Input metadata stays untouched.
	originalRaw := meta["custom"].(map[string]any)["attachments"].(map[string]any)
	if len(originalRaw) != 1 {
		t.Fatalf("input metadata mutated")
	}
}

func TestApplyKeepsUntouchedEntriesVerbatim(t *testing.T) {
	chunks := []any{"iVBO", "Rw=="}
	meta := map[string]any{
		"custom": map[string]any{
			"attachments": map[string]any{
				"old.png": map[string]any{"image/png": chunks},
			},
		},
	}
	store := attachments.FromMetadata(meta)
	name, store := attachments.Choose(store, "new", "img", ".png", "image/png")
	updated := attachments.Apply(meta, store)

	raw := updated["custom"].(map[string]any)["attachments"].(map[string]any)
	if _, ok := raw[name]; !ok {
		t.Fatalf("chosen attachment %q missing", name)
	}
	old, ok := raw["old.png"].(map[string]any)
	if !ok {
		t.Fatalf("pre-existing entry lost its container: %v", raw["old.png"])
	}
	if !reflect.DeepEqual(old["image/png"], chunks) {
		t.Fatalf("pre-existing chunked payload rewritten: %v", old["image/png"])
	}
}

func TestApplyKeepsNonConformingEntriesVerbatim(t *testing.T) {
	meta := map[string]any{
		"custom": map[string]any{
			"attachments": map[string]any{
				"odd.png": 7,
			},
		},
	}
	store := attachments.FromMetadata(meta)
	updated := attachments.Apply(meta, store)

	raw := updated["custom"].(map[string]any)["attachments"].(map[string]any)
	if raw["odd.png"] != 7 {
		t.Fatalf("non-conforming entry rewritten: %v", raw["odd.png"])
	}
}

func TestCloneIndependence(t *testing.T) {
	src := attachments.Store{
		"img.png": {"image/png": "payload"},
	}
	cloned := attachments.Clone(src)
	cloned["img.png"]["image/png"] = "tampered"
	if src["img.png"]["image/png"] != "payload" {
		t.Fatalf("clone shares record maps with source")
	}
	if attachments.Clone(nil) != nil {
		t.Fatalf("expected nil clone of nil store")
	}
}
