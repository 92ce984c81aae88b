package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixtureCatalog is a small catalog file used by command tests.
const fixtureCatalog = `{
  "$schemaVersion": "v1.0.0",
  "Brokers": {
    "name": "Message Brokers",
    "toolsList": [
      {"title": "Kafka Bridge", "filters": {"language": {"name": "Go"}, "technology": [{"name": "Kafka"}], "hasCommercial": false}},
      {"title": "Cloud Relay", "filters": {"language": {"name": "Rust"}, "hasCommercial": true}}
    ]
  },
  "Linters": {
    "toolsList": [
      {"title": "Spec Linter", "filters": {"language": {"name": "Go"}, "isAsyncAPIOwner": true, "hasCommercial": false}}
    ]
  }
}`

// writeFile writes content to dir/name, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// resetListFlags clears list flags, points --directory at dir, and
// restores the previous values after the test.
func resetListFlags(t *testing.T, dir string) {
	t.Helper()
	oldSearch, oldLanguage, oldTechnology, oldCategory := listSearchFlag, listLanguageFlag, listTechnologyFlag, listCategoryFlag
	oldPaid, oldOwner, oldCatalog, oldConfig := listPaidFlag, listOwnerFlag, listCatalogFlag, listConfigFlag
	oldDir, oldOutput, oldShowEmpty, oldDescription := listDirFlag, listOutputFlag, listShowEmptyFlag, listDescriptionFlag
	t.Cleanup(func() {
		listSearchFlag, listLanguageFlag, listTechnologyFlag, listCategoryFlag = oldSearch, oldLanguage, oldTechnology, oldCategory
		listPaidFlag, listOwnerFlag, listCatalogFlag, listConfigFlag = oldPaid, oldOwner, oldCatalog, oldConfig
		listDirFlag, listOutputFlag, listShowEmptyFlag, listDescriptionFlag = oldDir, oldOutput, oldShowEmpty, oldDescription
	})

	listSearchFlag, listLanguageFlag, listTechnologyFlag, listCategoryFlag = "", "", "", ""
	listPaidFlag, listOwnerFlag, listCatalogFlag, listConfigFlag = "", false, "", ""
	listDirFlag, listOutputFlag, listShowEmptyFlag, listDescriptionFlag = dir, "", false, false
}
