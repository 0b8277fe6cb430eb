package interner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	interner "github.com/probablyarth/interner-go"
)

func TestPathDomainCompare(t *testing.T) {
	var d interner.PathDomain
	h := interner.XXHash{}

	tests := []struct {
		a, b interner.Path
		want int
	}{
		{"a/b", "a/b", 0},
		{"a/b", "a//b", 0},
		{"a/b", "a/./b", 0},
		{"a/b/", "a/b", 0},
		{"./a", "./a", 0},
		{"/a", "//a", 0},
		{"/./a", "/a", 0},
		{"./a", "a", -1},
		{"/a", "a", -1},
		{"a", "a/b", -1},
		{"a/c", "a/b", 1},
		{"", "", 0},
		{"", "a", -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.a)+"|"+string(tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, d.Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, d.Compare(tt.b, tt.a))
			assert.Equal(t, tt.want == 0, d.Equal(tt.a, tt.b))
			if tt.want == 0 {
				assert.Equal(t, d.Hash(h, tt.a), d.Hash(h, tt.b))
			}
		})
	}
}

func TestBufferDomainCloneCopies(t *testing.T) {
	var d interner.BufferDomain
	src := []byte("abc")
	dst := d.Clone(src)
	src[0] = 'x'
	assert.Equal(t, []byte("abc"), dst)
	assert.NotNil(t, d.Clone(nil))
}

func TestHashersAreDeterministic(t *testing.T) {
	for name, h := range map[string]interner.Hasher{
		"xxhash":  interner.XXHash{},
		"maphash": interner.NewMapHash(),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, h.HashString("value"), h.HashString("value"))
			assert.Equal(t, h.HashString("value"), h.HashBytes([]byte("value")))
		})
	}
}
