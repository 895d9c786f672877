package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxIDPattern(t *testing.T) {
	valid := []string{"12345678901", "123.456.789-01"}
	for _, s := range valid {
		assert.True(t, taxIDPattern.MatchString(s), s)
	}

	invalid := []string{"", "1234567890", "123456789012", "123.456.78901", "12345678-901", "abc45678901"}
	for _, s := range invalid {
		assert.False(t, taxIDPattern.MatchString(s), s)
	}
}
