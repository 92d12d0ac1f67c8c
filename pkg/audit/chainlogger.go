package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Entry is a single audit record. Hash covers the previous hash, the
// timestamp and the payload, so any rewrite of history is detectable.
type Entry struct {
	Timestamp    string `json:"timestamp"`
	PreviousHash string `json:"previous_hash"`
	Payload      string `json:"payload"`
	Hash         string `json:"hash"`
}

// ChainLogger is an append-only, hash-chained audit log for processed
// payment instructions.
type ChainLogger struct {
	mu           sync.Mutex
	previousHash string
	entries      []*Entry
}

// NewChainLogger creates a ChainLogger anchored at a zero hash.
func NewChainLogger() *ChainLogger {
	return &ChainLogger{
		previousHash: strings.Repeat("0", 64),
	}
}

// Append adds a record to the chain and returns it.
func (c *ChainLogger) Append(payload string) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &Entry{
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		PreviousHash: c.previousHash,
		Payload:      payload,
	}

	hashInput := fmt.Sprintf("%s|%s|%s", entry.PreviousHash, entry.Timestamp, entry.Payload)
	sum := sha256.Sum256([]byte(hashInput))
	entry.Hash = hex.EncodeToString(sum[:])

	c.previousHash = entry.Hash
	c.entries = append(c.entries, entry)
	return entry
}

// Entries returns a copy of the chain in append order.
func (c *ChainLogger) Entries() []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// VerifyChain reports whether the entries form an unbroken hash chain.
func VerifyChain(entries []*Entry) bool {
	for i, entry := range entries {
		prevHash := entry.PreviousHash
		if i > 0 {
			prevHash = entries[i-1].Hash
			if entry.PreviousHash != prevHash {
				return false
			}
		}

		hashInput := fmt.Sprintf("%s|%s|%s", prevHash, entry.Timestamp, entry.Payload)
		sum := sha256.Sum256([]byte(hashInput))
		if hex.EncodeToString(sum[:]) != entry.Hash {
			return false
		}
	}
	return true
}
