package rst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `plain`, Escape("plain"))
	assert.Equal(t, `my\_module`, Escape("my_module"))
	assert.Equal(t, `a\*b`, Escape("a*b"))
	assert.Equal(t, "a\\`b", Escape("a`b"))
	assert.Equal(t, `a\|b`, Escape("a|b"))
	assert.Equal(t, `a\\b`, Escape(`a\b`))
}

func TestUnderline(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "=====", Underline("title", '='))
	assert.Equal(t, "---", Underline("abc", '-'))
	assert.Equal(t, "", Underline("", '='))
}
