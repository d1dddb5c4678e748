package filesystem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		parent   string
		child    string
		expected string
	}{
		{name: "adds separator", parent: "/a/b", child: "c", expected: "/a/b/c"},
		{name: "keeps single trailing separator", parent: "/a/b/", child: "c", expected: "/a/b/c"},
		{name: "root parent", parent: "/", child: "c", expected: "/c"},
		{name: "relative parent", parent: "dir", child: "file.txt", expected: "dir/file.txt"},
		{name: "empty parent", parent: "", child: "c", expected: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Join(tt.parent, tt.child))
		})
	}
}

func TestJoin_DoesNotTruncateLongPaths(t *testing.T) {
	parent := "/" + strings.Repeat("p", 600)
	child := strings.Repeat("c", 600)

	joined := Join(parent, child)
	require.Len(t, joined, len(parent)+1+len(child))
	require.True(t, strings.HasSuffix(joined, "/"+child))
}
