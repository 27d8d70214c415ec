package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEtagMatches(t *testing.T) {

	assert.True(t, EtagMatches("", "etag"))
	assert.True(t, EtagMatches("*", "etag"))
	assert.True(t, EtagMatches("etag", "etag"))
	assert.False(t, EtagMatches("stale", "etag"))

}
