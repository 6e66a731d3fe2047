package dnd

// ItemID is a stable identity key for one list item. It recognizes "the same
// logical item" across frames while the item's position changes. IDs must be
// unique within one list at one time.
type ItemID uint64

// Identifiable is implemented by items that carry their own identity,
// independent of how they render.
type Identifiable interface {
	DragID() ItemID
}

// FNV-1a parameters.
const (
	fnv64Offset = 1469598103934665603
	fnv64Prime  = 1099511628211
)

// HashString derives an ItemID from a string key.
func HashString(s string) ItemID {
	return ItemID(fnv64Offset).MixString(s)
}

// HashUint64 derives an ItemID from an integer key.
func HashUint64(v uint64) ItemID {
	return ItemID(fnv64Offset).MixUint64(v)
}

// MixString folds a string into the ID. Use it to combine several key parts
// into one identity, e.g. HashString(kind).MixString(name).
func (id ItemID) MixString(s string) ItemID {
	h := uint64(id)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnv64Prime
	}
	return ItemID(h)
}

// MixUint64 folds an integer into the ID.
func (id ItemID) MixUint64(v uint64) ItemID {
	h := uint64(id)
	h ^= v
	h *= fnv64Prime
	return ItemID(h)
}
