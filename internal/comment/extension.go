package comment

import (
	"context"
	"fmt"

	"github.com/pb33f/libopenapi/orderedmap"
	"gopkg.in/yaml.v3"
)

const DefaultExtension = "x-comments"

// FromExtensions decodes the comment list stored under key. A missing map or
// key yields an empty list.
func FromExtensions(ext *orderedmap.Map[string, *yaml.Node], key string) (comments List, err error) {
	if ext == nil {
		return List{}, nil
	}
	n, ok := ext.Get(key)
	if !ok || n == nil {
		return List{}, nil
	}

	if err = n.Decode(&comments); err != nil {
		return nil, fmt.Errorf("fail to decode `%s` extension: %w", key, err)
	}
	if comments == nil {
		comments = List{}
	}
	return
}

// ToExtensions returns a copy of ext with key holding the encoded comments.
// The order of the other extensions is kept.
func ToExtensions(ext *orderedmap.Map[string, *yaml.Node], key string, comments List) (*orderedmap.Map[string, *yaml.Node], error) {
	n := &yaml.Node{}
	if err := n.Encode(nonNil(comments)); err != nil {
		return nil, fmt.Errorf("fail to encode `%s` extension: %w", key, err)
	}

	dst := orderedmap.New[string, *yaml.Node]()
	if ext != nil {
		for pair := range orderedmap.Iterate(context.Background(), ext) {
			dst.Set(pair.Key(), pair.Value())
		}
	}
	dst.Set(key, n)
	return dst, nil
}

func nonNil(l List) List {
	if l == nil {
		return List{}
	}
	return l
}
