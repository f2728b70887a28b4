package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NotEmpty(From("hello"))

	SetLanguage(language.AmericanEnglish)
	assert.Equal("register 'R9' unknown", From("register '%v' unknown", "R9"))
	assert.Equal("value 1,500", From("value %v", 1500))
}
