package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	a := assert.New(t)

	validRx := regexp.MustCompile(`^[A-Za-z0-9_-]+\z`)
	for _, n := range []int{1, 8, 20, 40} {
		token, err := Generate(n)
		a.NoError(err)
		a.Len(token, n)
		a.Regexp(validRx, token)
	}

	t1, err := Generate(20)
	a.NoError(err)
	t2, err := Generate(20)
	a.NoError(err)
	a.NotEqual(t1, t2)
}
