package comment

import (
	"context"
	"testing"

	"github.com/pb33f/libopenapi/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() List {
	return List{
		New("a", "1"),
		Anonymous("note"),
		New("b", "2"),
		New("a", "3"),
	}
}

func TestTryItem(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		list  List
		value string
		found bool
	}{
		{name: "first match wins", key: "a", list: fixture(), value: "1", found: true},
		{name: "single", key: "b", list: fixture(), value: "2", found: true},
		{name: "missing", key: "c", list: fixture()},
		{name: "empty key never matches anonymous", key: "", list: fixture()},
		{name: "nil list", key: "a", list: nil},
		{name: "named empty", key: "", list: List{New("", "blank")}, value: "blank", found: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := TryItem(tt.key, tt.list)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.value, v)
			assert.Equal(t, tt.found, ContainsKey(tt.key, tt.list))
		})
	}
}

func TestItem(t *testing.T) {
	v, err := Item("b", fixture())
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	_, err = Item("missing", fixture())
	require.ErrorIs(t, err, ErrMissingKey)
	assert.Contains(t, err.Error(), "missing")

	_, err = fixture().Item("")
	require.ErrorIs(t, err, ErrMissingKey)
}

func TestToMap(t *testing.T) {
	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, ToMap(fixture()))
	assert.Equal(t, map[string]string{"a": "2"}, ToMap(List{New("a", "1"), New("a", "2")}))
	assert.Empty(t, ToMap(List{Anonymous("x")}))
	assert.Empty(t, ToMap(nil))
}

func TestToOrderedMap(t *testing.T) {
	m := ToOrderedMap(List{New("z", "1"), Anonymous("x"), New("a", "2"), New("z", "3")})
	require.Equal(t, 2, m.Len())

	v, ok := m.Get("z")
	require.True(t, ok)
	assert.Equal(t, "3", v)

	var keys []string
	for pair := range orderedmap.Iterate(context.Background(), m) {
		keys = append(keys, pair.Key())
	}
	assert.Equal(t, []string{"z", "a"}, keys)
}

func TestAdd(t *testing.T) {
	src := fixture()
	before := src.Clone()

	got := Add(New("a", "4"), src)
	assert.Len(t, got, len(src)+1)
	assert.True(t, got[len(got)-1].Equal(New("a", "4")))
	assert.True(t, src.Equal(before), "input should not be modified")

	got = src.Add(Anonymous("y"))
	assert.True(t, got[len(got)-1].Equal(Anonymous("y")))

	assert.True(t, Add(New("k", "v"), nil).Equal(List{New("k", "v")}))
}

func TestAddDoesNotShareBacking(t *testing.T) {
	src := make(List, 1, 4)
	src[0] = New("a", "1")

	x := Add(New("b", "2"), src)
	y := Add(New("c", "3"), src)
	assert.Equal(t, "2", x[1].Value)
	assert.Equal(t, "3", y[1].Value)
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		comment Comment
		list    List
		want    List
	}{
		{
			name:    "replace",
			comment: New("a", "x"),
			list:    List{New("a", "1"), New("b", "2")},
			want:    List{New("a", "x"), New("b", "2")},
		},
		{
			name:    "append when absent",
			comment: New("c", "z"),
			list:    List{New("a", "1")},
			want:    List{New("a", "1"), New("c", "z")},
		},
		{
			name:    "replace every occurrence",
			comment: New("a", "x"),
			list:    fixture(),
			want:    List{New("a", "x"), Anonymous("note"), New("b", "2"), New("a", "x")},
		},
		{
			name:    "empty list",
			comment: New("a", "x"),
			list:    nil,
			want:    List{New("a", "x")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.list.Clone()
			got, err := Set(tt.comment, tt.list)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %+v", got)
			assert.True(t, before.Equal(tt.list), "input should not be modified")
		})
	}
}

func TestSetAnonymous(t *testing.T) {
	_, err := fixture().Set(Anonymous("x"))
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestDropByKey(t *testing.T) {
	src := fixture()
	before := src.Clone()

	got := DropByKey("a", src)
	assert.True(t, got.Equal(List{Anonymous("note"), New("b", "2")}))
	assert.True(t, src.Equal(before))

	assert.True(t, src.DropByKey("").Equal(src), "anonymous comments are kept")
	assert.True(t, DropByKey("missing", src).Equal(src))
	assert.Empty(t, DropByKey("a", nil))
}

func TestProperties(t *testing.T) {
	lists := []List{nil, {}, fixture(), {Anonymous("a")}, {New("k", "1"), New("k", "2")}}
	keys := []string{"", "a", "b", "k", "missing"}

	for _, l := range lists {
		for _, k := range keys {
			assert.True(t, ContainsKey(k, Add(New(k, "v"), l)))
			assert.False(t, ContainsKey(k, DropByKey(k, l)))

			want, found := "", false
			for _, c := range l {
				if c.Name != nil && *c.Name == k {
					want, found = c.Value, true
					break
				}
			}
			v, ok := TryItem(k, l)
			assert.Equal(t, found, ok)
			assert.Equal(t, want, v)

			set, err := Set(New(k, "s"), l)
			require.NoError(t, err)
			v, ok = TryItem(k, set)
			assert.True(t, ok)
			assert.Equal(t, "s", v)

			anon := 0
			for _, c := range DropByKey(k, l) {
				if c.Name == nil {
					anon++
				}
			}
			wantAnon := 0
			for _, c := range l {
				if c.Name == nil {
					wantAnon++
				}
			}
			assert.Equal(t, wantAnon, anon)
		}
	}
}

func TestCommentEqual(t *testing.T) {
	assert.True(t, New("a", "1").Equal(New("a", "1")))
	assert.False(t, New("a", "1").Equal(New("a", "2")))
	assert.False(t, New("a", "1").Equal(Anonymous("1")))
	assert.True(t, Anonymous("1").Equal(Anonymous("1")))
	assert.False(t, New("a", "1").WithID("x").Equal(New("a", "1")))
	assert.True(t, New("a", "1").WithID("x").Equal(New("a", "1").WithID("x")))

	k, ok := Anonymous("1").Key()
	assert.False(t, ok)
	assert.Empty(t, k)
}
