package comment

// Comment is an ISA comment. A comment without a Name is anonymous and never
// matches any key.
type Comment struct {
	ID    *string `json:"@id,omitempty" yaml:"@id,omitempty"`
	Name  *string `json:"name,omitempty" yaml:"name,omitempty"`
	Value string  `json:"value" yaml:"value"`
}

func New(name, value string) Comment {
	return Comment{Name: &name, Value: value}
}

func Anonymous(value string) Comment {
	return Comment{Value: value}
}

func (c Comment) WithID(id string) Comment {
	c.ID = &id
	return c
}

// Key returns the comment name, if any.
func (c Comment) Key() (string, bool) {
	if c.Name == nil {
		return "", false
	}
	return *c.Name, true
}

func (c Comment) HasKey(key string) bool {
	return valEquals(c.Name, key)
}

// Equal compares comments field by field, dereferencing optional fields.
func (c Comment) Equal(o Comment) bool {
	return ptrEquals(c.ID, o.ID) && ptrEquals(c.Name, o.Name) && c.Value == o.Value
}

func valEquals[T comparable](ptr *T, want T) bool {
	return ptr != nil && *ptr == want
}

func ptrEquals[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
