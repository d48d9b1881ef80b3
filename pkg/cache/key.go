package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// LayoutKey builds the cache key for a layout request. Words are hashed in
// order — the engine's greedy search makes placement order-sensitive, so
// permutations of the same list are distinct layouts.
func LayoutKey(words []string, size int, empty rune) string {
	payload := struct {
		Words []string `json:"words"`
		Size  int      `json:"size"`
		Empty string   `json:"empty"`
	}{words, size, string(empty)}

	data, _ := json.Marshal(payload)
	return "layout:" + Hash(data)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
