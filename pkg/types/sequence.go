package types

import (
	"encoding/json"
	"iter"
	"slices"
	"strings"
)

// Sequence is an ordered, immutable list of collection types, outermost
// level first. Duplicates are allowed and kept in place. The zero value is
// an empty sequence.
type Sequence struct {
	items []CollectionType
}

// NewSequence copies items into a new Sequence. Later changes to items do
// not affect the result.
func NewSequence(items ...CollectionType) Sequence {
	return Sequence{items: slices.Clone(items)}
}

// Len returns the number of levels.
func (s Sequence) Len() int {
	return len(s.items)
}

// At returns the collection type at index i (zero based).
// It panics if i is out of range, like a slice index.
func (s Sequence) At(i int) CollectionType {
	return s.items[i]
}

// All yields each position and collection type in order.
func (s Sequence) All() iter.Seq2[int, CollectionType] {
	return func(yield func(int, CollectionType) bool) {
		for i, ct := range s.items {
			if !yield(i, ct) {
				return
			}
		}
	}
}

// Slice returns a copy of the underlying collection types.
func (s Sequence) Slice() []CollectionType {
	return slices.Clone(s.items)
}

// Strings returns the display labels in order.
func (s Sequence) Strings() []string {
	out := make([]string, len(s.items))
	for i, ct := range s.items {
		out[i] = ct.String()
	}
	return out
}

// Contains reports whether ct appears anywhere in the sequence.
func (s Sequence) Contains(ct CollectionType) bool {
	return slices.Contains(s.items, ct)
}

// Equal reports whether both sequences hold the same types in the same order.
func (s Sequence) Equal(other Sequence) bool {
	return slices.Equal(s.items, other.items)
}

// String renders the sequence as "Platform > Analysis > Report".
func (s Sequence) String() string {
	return strings.Join(s.Strings(), " > ")
}

// MarshalJSON encodes the sequence as an array of labels.
func (s Sequence) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON decodes an array of labels. Every label must belong to the
// vocabulary.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	items := make([]CollectionType, len(labels))
	for i, label := range labels {
		ct, err := ParseCollectionType(label)
		if err != nil {
			return err
		}
		items[i] = ct
	}
	s.items = items
	return nil
}

// MarshalYAML encodes the sequence as a list of labels.
func (s Sequence) MarshalYAML() (any, error) {
	return s.Strings(), nil
}
