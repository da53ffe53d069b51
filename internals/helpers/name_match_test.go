package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstNameToken(t *testing.T) {
	assert.Equal(t, "Juan", FirstNameToken("Juan Dela Cruz"))
	assert.Equal(t, "Maria", FirstNameToken("  Maria  Santos "))
	assert.Equal(t, "solo", FirstNameToken("solo"))
	assert.Equal(t, "", FirstNameToken(""))
	assert.Equal(t, "", FirstNameToken("   "))
}

func TestFirstNameTokens(t *testing.T) {
	tokens := FirstNameTokens([]string{"Juan Dela Cruz", "", "Maria Santos", "  "})
	assert.Equal(t, []string{"Juan", "Maria"}, tokens)
}

func TestContainsAll(t *testing.T) {
	assert.True(t, ContainsAll(nil))
	assert.True(t, ContainsAll([]string{}))
	assert.True(t, ContainsAll([]string{"all"}))
	assert.True(t, ContainsAll([]string{"Juan", " ALL "}))
	assert.False(t, ContainsAll([]string{"Juan Dela Cruz"}))
	assert.False(t, ContainsAll([]string{"Allan"}))
}
