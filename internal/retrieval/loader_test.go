package retrieval

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "course.txt")

	content := "Goroutines are lightweight threads managed by the runtime.\n" +
		strings.Repeat("Channels carry values between goroutines. ", 40)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	chunks, err := LoadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	for _, c := range chunks {
		require.LessOrEqual(t, len([]rune(c)), ChunkSize)
		require.NotEqual(t, "", strings.TrimSpace(c))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestLoadFile_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n\t"), 0o644))

	chunks, err := LoadFile(path)
	require.NoError(t, err)
	require.Empty(t, chunks)
}
