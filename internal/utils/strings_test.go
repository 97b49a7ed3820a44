package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "254712***678", MaskPhone("254712345678"))
	assert.Equal(t, "254789***345", MaskPhone("254789012345"))

	// Short strings pass through unmasked
	assert.Equal(t, "0712345", MaskPhone("0712345"))
	assert.Equal(t, "", MaskPhone(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "txn_9f3a1c2b", Truncate("txn_9f3a1c2b4d5e", 12))
	assert.Equal(t, "short", Truncate("short", 12))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestGenerateID(t *testing.T) {
	id := GenerateID("txn")

	assert.Len(t, id, 16)
	assert.Regexp(t, `^txn_[0-9a-f]{12}$`, id)

	// Two calls never collide
	assert.NotEqual(t, id, GenerateID("txn"))
}
