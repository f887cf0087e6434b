package comment

import (
	"errors"
	"fmt"

	"github.com/pb33f/libopenapi/orderedmap"
)

var (
	ErrMissingKey       = errors.New("comment key not found")
	ErrInvalidOperation = errors.New("invalid comment operation")
)

// List is an ordered list of comments. None of the functions below modify
// the list they are given.
type List []Comment

// TryItem returns the value of the first comment named key.
func TryItem(key string, comments List) (string, bool) {
	for _, c := range comments {
		if c.HasKey(key) {
			return c.Value, true
		}
	}
	return "", false
}

func ContainsKey(key string, comments List) bool {
	_, ok := TryItem(key, comments)
	return ok
}

func Item(key string, comments List) (string, error) {
	v, ok := TryItem(key, comments)
	if !ok {
		return "", fmt.Errorf("fail to get comment '%s': %w", key, ErrMissingKey)
	}
	return v, nil
}

// ToMap maps comment names to values. Anonymous comments are skipped and
// later duplicates overwrite earlier ones.
func ToMap(comments List) map[string]string {
	m := make(map[string]string, len(comments))
	for _, c := range comments {
		if k, ok := c.Key(); ok {
			m[k] = c.Value
		}
	}
	return m
}

// ToOrderedMap is ToMap with keys kept in order of first appearance.
func ToOrderedMap(comments List) *orderedmap.Map[string, string] {
	m := orderedmap.New[string, string]()
	for _, c := range comments {
		if k, ok := c.Key(); ok {
			m.Set(k, c.Value)
		}
	}
	return m
}

func Add(comment Comment, comments List) List {
	dst := make(List, 0, len(comments)+1)
	dst = append(dst, comments...)
	return append(dst, comment)
}

// Set replaces every comment sharing the name of comment, or appends it when
// there is none. The comment must be named.
func Set(comment Comment, comments List) (List, error) {
	key, ok := comment.Key()
	if !ok {
		return nil, fmt.Errorf("fail to set anonymous comment: %w", ErrInvalidOperation)
	}
	if !ContainsKey(key, comments) {
		return Add(comment, comments), nil
	}

	dst := make(List, 0, len(comments))
	for _, c := range comments {
		if ptrEquals(c.Name, comment.Name) {
			c = comment
		}
		dst = append(dst, c)
	}
	return dst, nil
}

func DropByKey(key string, comments List) List {
	dst := make(List, 0, len(comments))
	for _, c := range comments {
		if c.HasKey(key) {
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

func (l List) TryItem(key string) (string, bool) { return TryItem(key, l) }
func (l List) ContainsKey(key string) bool { return ContainsKey(key, l) }
func (l List) Item(key string) (string, error) { return Item(key, l) }
func (l List) ToMap() map[string]string { return ToMap(l) }
func (l List) Add(c Comment) List { return Add(c, l) }
func (l List) Set(c Comment) (List, error) { return Set(c, l) }
func (l List) DropByKey(key string) List { return DropByKey(key, l) }
func (l List) ToOrderedMap() *orderedmap.Map[string, string] { return ToOrderedMap(l) }

func (l List) Clone() List {
	if l == nil {
		return nil
	}
	return append(make(List, 0, len(l)), l...)
}

// Equal reports whether both lists hold equal comments in the same order.
func (l List) Equal(o List) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
