package snippet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Run("no tabs returns input", func(t *testing.T) {
		assert.Equal(t, "plain", ExpandTabs("plain"))
	})

	t.Run("column aware", func(t *testing.T) {
		// "ab" occupies columns 0-1, so the tab pads to column 8
		assert.Equal(t, "ab      c", ExpandTabs("ab\tc"))
	})

	t.Run("tab at stop boundary pads a full stop", func(t *testing.T) {
		assert.Equal(t, "12345678        x", ExpandTabs("12345678\tx"))
	})

	t.Run("column resets per line", func(t *testing.T) {
		assert.Equal(t, "a       b\nc       d", ExpandTabs("a\tb\nc\td"))
	})
}

func TestTruncate(t *testing.T) {
	t.Run("under cap unchanged", func(t *testing.T) {
		assert.Equal(t, "short", Truncate("short", 100, TruncateNotice))
	})

	t.Run("over cap appends notice", func(t *testing.T) {
		got := Truncate(strings.Repeat("x", 50), 10, TruncateNotice)
		assert.Equal(t, strings.Repeat("x", 10)+TruncateNotice, got)
	})

	t.Run("zero cap disables", func(t *testing.T) {
		long := strings.Repeat("x", 50)
		assert.Equal(t, long, Truncate(long, 0, TruncateNotice))
	})
}

func TestRender(t *testing.T) {
	t.Run("cat -n format", func(t *testing.T) {
		got := Render("a\nb", "/work/f.txt", 1)
		assert.Equal(t, "Here's the result of running `cat -n` on /work/f.txt:\n     1\ta\n     2\tb\n", got)
	})

	t.Run("start line offsets numbering", func(t *testing.T) {
		got := Render("x", "a snippet of /work/f.txt", 42)
		assert.Contains(t, got, "    42\tx\n")
	})

	t.Run("huge content clipped with notice", func(t *testing.T) {
		got := Render(strings.Repeat("y", MaxResponseLen+100), "/work/f.txt", 1)
		assert.Contains(t, got, "<response clipped>")
	})
}
