package audit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainLinksEntries(t *testing.T) {
	c := NewChainLogger()

	first := c.Append("instruction processed status=successful")
	second := c.Append("instruction processed status=failed")

	require.Equal(t, first.Hash, second.PreviousHash)
	require.True(t, VerifyChain(c.Entries()))
}

func TestVerifyChainDetectsTampering(t *testing.T) {
	c := NewChainLogger()
	c.Append("a")
	c.Append("b")
	c.Append("c")

	entries := c.Entries()
	require.True(t, VerifyChain(entries))

	entries[1].Payload = "b-modified"
	require.False(t, VerifyChain(entries))
}

func TestVerifyChainEmpty(t *testing.T) {
	require.True(t, VerifyChain(nil))
}
