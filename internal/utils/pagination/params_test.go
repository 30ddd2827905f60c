package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, 0, ParsePage(""))
	assert.Equal(t, 0, ParsePage("junk"))
	assert.Equal(t, 0, ParsePage("-3"))
	assert.Equal(t, 7, ParsePage("7"))
}

func TestParseSize(t *testing.T) {
	assert.Equal(t, DefaultSize, ParseSize(""))
	assert.Equal(t, DefaultSize, ParseSize("0"))
	assert.Equal(t, DefaultSize, ParseSize("-1"))
	assert.Equal(t, 50, ParseSize("50"))
	assert.Equal(t, MaxSize, ParseSize("100000"))
}
