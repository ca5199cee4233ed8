// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flags-migrate/internal/discovery"
	"flags-migrate/internal/rewrite"
	"flags-migrate/internal/rules"
)

const legacySource = `import gflags

gflags.DEFINE_multistring('langs', [], 'languages')

def teardown():
    FLAGS.Reset()
`

const migratedSource = `import gflags

gflags.DEFINE_multi_string('langs', [], 'languages')

def teardown():
    FLAGS.unparse_flags()
`

func newRewriter(t *testing.T) *rewrite.Rewriter {
	t.Helper()
	set, err := rules.Builtin()
	require.NoError(t, err)
	return rewrite.New(set)
}

func writeSource(t *testing.T, content string) discovery.SourceFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.py")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return discovery.SourceFile{Path: path, Rel: "app.py"}
}

func TestProcessFile_Write(t *testing.T) {
	file := writeSource(t, legacySource)
	rw := newRewriter(t)

	res := ProcessFile(file, rw, ModeWrite)
	require.NoError(t, res.Err)
	assert.True(t, res.Changed)
	assert.Equal(t, 2, res.Replacements)
	assert.Empty(t, res.Remaining)

	data, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Equal(t, migratedSource, string(data))
}

func TestProcessFile_WritePreservesMode(t *testing.T) {
	file := writeSource(t, legacySource)
	require.NoError(t, os.Chmod(file.Path, 0755))

	res := ProcessFile(file, newRewriter(t), ModeWrite)
	require.NoError(t, res.Err)

	info, err := os.Stat(file.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestProcessFile_Diff(t *testing.T) {
	file := writeSource(t, legacySource)

	res := ProcessFile(file, newRewriter(t), ModeDiff)
	require.NoError(t, res.Err)
	assert.True(t, res.Changed)
	assert.Contains(t, res.Diff, "-gflags.DEFINE_multistring('langs', [], 'languages')")
	assert.Contains(t, res.Diff, "+gflags.DEFINE_multi_string('langs', [], 'languages')")
	assert.Contains(t, res.Diff, "a/app.py")

	// Dry run: the file on disk is untouched.
	data, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Equal(t, legacySource, string(data))
}

func TestProcessFile_Check(t *testing.T) {
	file := writeSource(t, legacySource)

	res := ProcessFile(file, newRewriter(t), ModeCheck)
	require.NoError(t, res.Err)
	assert.False(t, res.Changed)
	require.Len(t, res.Remaining, 2)
	assert.Equal(t, 3, res.Remaining[0].Line)
	assert.Equal(t, 6, res.Remaining[1].Line)

	data, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Equal(t, legacySource, string(data))
}

func TestProcessFile_NoMatchesIsNotAnError(t *testing.T) {
	file := writeSource(t, migratedSource)

	res := ProcessFile(file, newRewriter(t), ModeWrite)
	require.NoError(t, res.Err)
	assert.False(t, res.Changed)
	assert.Zero(t, res.Replacements)
	assert.Empty(t, res.Remaining)
}

func TestProcessFile_ReadErrorIsReported(t *testing.T) {
	// A directory path fails the read and must surface as a per-file
	// error, not a panic or a write.
	dir := discovery.SourceFile{Path: t.TempDir(), Rel: "dir"}

	res := ProcessFile(dir, newRewriter(t), ModeWrite)
	require.Error(t, res.Err)
	assert.False(t, res.Changed)
}

func TestProcessAll(t *testing.T) {
	root := t.TempDir()
	var files []discovery.SourceFile
	for _, name := range []string{"a.py", "b.py", "c.py"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.WriteFile(path, []byte(legacySource), 0644))
		files = append(files, discovery.SourceFile{Path: path, Rel: name})
	}
	// One bad entry; the rest of the batch must still complete.
	files = append(files, discovery.SourceFile{Path: filepath.Join(root, "missing.py"), Rel: "missing.py"})

	var results []FileResult
	for res := range ProcessAll(context.Background(), files, newRewriter(t), ModeWrite) {
		results = append(results, res)
	}
	require.Len(t, results, 4)

	var changed, failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		if res.Changed {
			changed++
		}
	}
	assert.Equal(t, 3, changed)
	assert.Equal(t, 1, failed)
}

func TestModeString(t *testing.T) {
	if got := ModeWrite.String(); got != "write" {
		t.Errorf("expected 'write', got %q", got)
	}
	if !strings.HasPrefix(Mode(42).String(), "mode(") {
		t.Errorf("unexpected format for unknown mode: %q", Mode(42).String())
	}
}
