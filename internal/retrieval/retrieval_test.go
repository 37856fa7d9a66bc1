package retrieval

import (
	"strings"
	"testing"
)

func TestChunkText(t *testing.T) {
	text := strings.Repeat("a", 2000)
	chunks := ChunkText(text, 800, 100)
	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
	if len(chunks[0]) != 800 || len(chunks[1]) != 800 {
		t.Errorf("chunk sizes = %d, %d, want 800 each", len(chunks[0]), len(chunks[1]))
	}
	// 2000 runes, step 700: last chunk starts at 1400.
	if len(chunks[2]) != 600 {
		t.Errorf("last chunk size = %d, want 600", len(chunks[2]))
	}
}

func TestChunkText_Short(t *testing.T) {
	chunks := ChunkText("photosynthesis converts light", 800, 100)
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
}

func TestChunkText_SkipsBlank(t *testing.T) {
	if got := ChunkText("   \n\t  ", 800, 100); len(got) != 0 {
		t.Errorf("chunks = %v, want none for blank input", got)
	}
}

func TestKeywordRetriever(t *testing.T) {
	chunks := []string{
		"The mitochondria is the powerhouse of the cell.",
		"Photosynthesis converts light energy into chemical energy. Photosynthesis occurs in chloroplasts.",
		"Osmosis moves water across membranes.",
		"Light reactions begin photosynthesis.",
	}
	r := NewKeywordRetriever(chunks)

	got := r.Rank("Photosynthesis", 2)
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	// Two mentions beat one.
	if got[0] != chunks[1] {
		t.Errorf("top result = %q, want the double-mention chunk", got[0])
	}
	if got[1] != chunks[3] {
		t.Errorf("second result = %q", got[1])
	}
}

func TestKeywordRetriever_NoMatches(t *testing.T) {
	r := NewKeywordRetriever([]string{"osmosis moves water"})
	if got := r.Rank("quantum entanglement", 3); len(got) != 0 {
		t.Errorf("results = %v, want none", got)
	}
	if got := r.Rank("", 3); len(got) != 0 {
		t.Errorf("results for empty query = %v, want none", got)
	}
}
