package postman

import "fmt"

// Item tree helpers. The remote API has no per-request endpoints, so request
// and folder operations fetch the collection, rebuild the tree, and PUT the
// whole document back. Every function here returns a new tree and never
// mutates its input.

// FindItem returns the first item with the given ID, depth-first.
func FindItem(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
		if it.Kind == KindFolder {
			if found, ok := FindItem(it.Items, id); ok {
				return found, true
			}
		}
	}
	return Item{}, false
}

// InsertItem returns a new tree with item appended under the folder matching
// parentID, or at the root when parentID is empty.
func InsertItem(items []Item, parentID string, item Item) ([]Item, error) {
	if parentID == "" {
		out := make([]Item, 0, len(items)+1)
		out = append(out, items...)
		return append(out, item), nil
	}

	out, found, err := insertUnder(items, parentID, item)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("folder %s not found", parentID)
	}
	return out, nil
}

func insertUnder(items []Item, parentID string, item Item) ([]Item, bool, error) {
	out := make([]Item, len(items))
	found := false
	for i, it := range items {
		if !found && it.ID == parentID {
			if it.Kind != KindFolder {
				return nil, false, fmt.Errorf("item %s is not a folder", parentID)
			}
			children := make([]Item, 0, len(it.Items)+1)
			children = append(children, it.Items...)
			it.Items = append(children, item)
			found = true
		} else if !found && it.Kind == KindFolder {
			children, ok, err := insertUnder(it.Items, parentID, item)
			if err != nil {
				return nil, false, err
			}
			if ok {
				it.Items = children
				found = true
			}
		}
		out[i] = it
	}
	return out, found, nil
}

// ReplaceItem returns a new tree with the item matching id replaced by
// fn(item). The bool reports whether a match was found.
func ReplaceItem(items []Item, id string, fn func(Item) Item) ([]Item, bool) {
	out := make([]Item, len(items))
	found := false
	for i, it := range items {
		if !found && it.ID == id {
			it = fn(it)
			found = true
		} else if !found && it.Kind == KindFolder {
			if children, ok := ReplaceItem(it.Items, id, fn); ok {
				it.Items = children
				found = true
			}
		}
		out[i] = it
	}
	return out, found
}

// RemoveItem returns a new tree without the item matching id, plus the
// removed item.
func RemoveItem(items []Item, id string) ([]Item, Item, bool) {
	out := make([]Item, 0, len(items))
	var removed Item
	found := false
	for _, it := range items {
		if !found && it.ID == id {
			removed = it
			found = true
			continue
		}
		if !found && it.Kind == KindFolder {
			if children, rem, ok := RemoveItem(it.Items, id); ok {
				it.Items = children
				removed = rem
				found = true
			}
		}
		out = append(out, it)
	}
	return out, removed, found
}

// MoveItem removes the item matching id and re-inserts it under targetID, or
// at the root when targetID is empty.
func MoveItem(items []Item, id, targetID string) ([]Item, error) {
	pruned, moved, ok := RemoveItem(items, id)
	if !ok {
		return nil, fmt.Errorf("item %s not found", id)
	}
	return InsertItem(pruned, targetID, moved)
}
