package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "scanconv.dev/pkg/scanconv/internal/model"
)

// newScanRoot creates a scan root with every technology directory present.
func newScanRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, variant := range m.Variants {
		require.NoError(t, os.Mkdir(filepath.Join(root, variant.Dir()), 0o755))
	}

	return root
}

func writeScanFile(t *testing.T, root string, variant m.Variant, name, content string) string {
	t.Helper()

	path := filepath.Join(root, variant.Dir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}
