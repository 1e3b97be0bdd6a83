package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramName(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/tmp/shaders/globe.frag", "globe", true},
		{"atmosphere.vert", "atmosphere", true},
		{"shaders/globe.frag.swp", "", false},
		{"shaders/README.md", "", false},
		{".vert", "", false},
	}

	for _, tt := range tests {
		got, ok := programName(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestPendingSetDeduplicates(t *testing.T) {
	var p pendingSet
	p.add("globe")
	p.add("atmosphere")
	p.add("globe")

	assert.Equal(t, []string{"globe", "atmosphere"}, p.take())
	assert.Empty(t, p.take())
}

func TestPendingSetKeepsEveryName(t *testing.T) {
	var p pendingSet
	var want []string
	for i := 0; i < 64; i++ {
		name := fmt.Sprintf("program%02d", i)
		want = append(want, name)
		p.add(name)
		p.add(name)
	}

	assert.Equal(t, want, p.take())
}

func TestWatcherReportsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "globe.frag")
	require.NoError(t, os.WriteFile(path, []byte("// v1\n"), 0o644))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("// v2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	deadline := time.Now().Add(5 * time.Second)
	var got []string
	for time.Now().Before(deadline) {
		got = append(got, w.Pending()...)
		if len(got) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.NotEmpty(t, got)
	assert.Equal(t, "globe", got[0])
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}
