// Package retrieval loads course material and ranks text chunks
// against a topic query for quiz preparation.
package retrieval

import (
	"fmt"
	"os"
	"strings"
)

const (
	// ChunkSize and ChunkOverlap control how course text is split.
	// Overlapping chunks keep sentences that straddle a boundary
	// retrievable from both sides.
	ChunkSize    = 800
	ChunkOverlap = 100
)

// ChunkText splits text into chunks of at most size runes with the
// given overlap between consecutive chunks. Whitespace-only chunks are
// dropped.
func ChunkText(text string, size, overlap int) []string {
	if size <= 0 {
		size = ChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = ChunkOverlap
	}

	runes := []rune(text)
	var chunks []string
	step := size - overlap
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}

// LoadFile reads a course text file and chunks it with the default
// parameters.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course file: %w", err)
	}
	return ChunkText(string(data), ChunkSize, ChunkOverlap), nil
}
