package cocogen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	cocogen "github.com/wictorwilen/cocogen-sub001"
)

func TestLoadConfigWalksUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	data := []byte("format: json\ngenerate:\n  targets: [typescript]\n  out: gen\nsample:\n  count: 5\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".cocogen.yaml"), data, 0o644))

	cfg, err := cocogen.LoadConfig(nested)
	require.NoError(t, err)
	require.Equal(t, cocogen.FormatJSON, cfg.Format)
	require.Equal(t, []string{"typescript"}, cfg.Generate.Targets)
	require.Equal(t, "gen", cfg.Generate.Out)
	require.Equal(t, 5, cfg.Sample.Count)
}

func TestFindConfigMissing(t *testing.T) {
	t.Parallel()

	_, err := cocogen.FindConfig(t.TempDir())
	require.ErrorIs(t, err, cocogen.ErrConfigNotFound)
}
