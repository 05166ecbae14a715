package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkID(t *testing.T) {
	assert.Equal(t, "link-0", LinkID(0))
	assert.Equal(t, "link-42", LinkID(42))
}

func TestSeedLink(t *testing.T) {
	seed := SeedLink()
	assert.Equal(t, "link-0", seed.ID)
	assert.Equal(t, "www.howtographql.com", seed.URL)
	assert.Equal(t, "Fullstack tutorial for GraphQL", seed.Description)
}
