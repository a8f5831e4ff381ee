package postman

import (
	"encoding/json"
	"testing"
)

func itemTree() []Item {
	return []Item{
		{
			Kind:    KindRequest,
			ID:      "r1",
			Name:    "List Users",
			Request: &Request{Method: "GET", URL: StringURL("https://api.example.com/users")},
		},
		{
			Kind: KindFolder,
			ID:   "f1",
			Name: "Admin",
			Items: []Item{
				{
					Kind:    KindRequest,
					ID:      "r2",
					Name:    "Create User",
					Request: &Request{Method: "POST", URL: StringURL("https://api.example.com/users")},
				},
			},
		},
	}
}

func TestFindItem(t *testing.T) {
	items := itemTree()

	if it, ok := FindItem(items, "r2"); !ok || it.Name != "Create User" {
		t.Errorf("FindItem(r2) = %+v, %v", it, ok)
	}
	if it, ok := FindItem(items, "f1"); !ok || it.Kind != KindFolder {
		t.Errorf("FindItem(f1) = %+v, %v", it, ok)
	}
	if _, ok := FindItem(items, "nope"); ok {
		t.Error("FindItem found a nonexistent id")
	}
}

func TestInsertItem_Root(t *testing.T) {
	items := itemTree()
	out, err := InsertItem(items, "", Item{Kind: KindRequest, ID: "r3", Name: "New"})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[2].ID != "r3" {
		t.Errorf("root insert result: %+v", out)
	}
	if len(items) != 2 {
		t.Error("input tree was mutated")
	}
}

func TestInsertItem_Folder(t *testing.T) {
	items := itemTree()
	out, err := InsertItem(items, "f1", Item{Kind: KindRequest, ID: "r3", Name: "New"})
	if err != nil {
		t.Fatal(err)
	}
	folder := out[1]
	if len(folder.Items) != 2 || folder.Items[1].ID != "r3" {
		t.Errorf("folder children: %+v", folder.Items)
	}
	if len(items[1].Items) != 1 {
		t.Error("input folder was mutated")
	}
}

func TestInsertItem_Errors(t *testing.T) {
	items := itemTree()
	if _, err := InsertItem(items, "missing", Item{ID: "x"}); err == nil {
		t.Error("expected error for unknown parent")
	}
	if _, err := InsertItem(items, "r1", Item{ID: "x"}); err == nil {
		t.Error("expected error for non-folder parent")
	}
}

func TestReplaceItem(t *testing.T) {
	items := itemTree()
	out, ok := ReplaceItem(items, "r2", func(it Item) Item {
		it.Name = "Renamed"
		return it
	})
	if !ok {
		t.Fatal("item not found")
	}
	if out[1].Items[0].Name != "Renamed" {
		t.Errorf("nested replace failed: %+v", out[1].Items)
	}
	if items[1].Items[0].Name != "Create User" {
		t.Error("input tree was mutated")
	}

	if _, ok := ReplaceItem(items, "missing", func(it Item) Item { return it }); ok {
		t.Error("replace reported success for a nonexistent id")
	}
}

func TestRemoveItem(t *testing.T) {
	items := itemTree()
	out, removed, ok := RemoveItem(items, "r2")
	if !ok || removed.Name != "Create User" {
		t.Fatalf("removed = %+v, %v", removed, ok)
	}
	if len(out[1].Items) != 0 {
		t.Errorf("folder still holds: %+v", out[1].Items)
	}
	if len(items[1].Items) != 1 {
		t.Error("input tree was mutated")
	}
}

func TestMoveItem(t *testing.T) {
	items := itemTree()

	out, err := MoveItem(items, "r1", "f1")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("root after move: %+v", out)
	}
	folder := out[0]
	if len(folder.Items) != 2 || folder.Items[1].ID != "r1" {
		t.Errorf("folder after move: %+v", folder.Items)
	}

	// Back to root.
	out, err = MoveItem(out, "r1", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[1].ID != "r1" {
		t.Errorf("root after move back: %+v", out)
	}

	if _, err := MoveItem(items, "missing", ""); err == nil {
		t.Error("expected error for unknown item")
	}
}

func TestTreeHelpers_InputUntouched(t *testing.T) {
	items := itemTree()
	before, _ := json.Marshal(items)

	_, _ = InsertItem(items, "f1", Item{Kind: KindRequest, ID: "x", Name: "X"})
	_, _ = ReplaceItem(items, "r1", func(it Item) Item { it.Name = "Y"; return it })
	_, _, _ = RemoveItem(items, "r2")
	_, _ = MoveItem(items, "r1", "f1")

	after, _ := json.Marshal(items)
	if string(before) != string(after) {
		t.Error("helpers mutated their input tree")
	}
}
