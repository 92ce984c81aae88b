package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/toolcatalog/pkg/config"
	"github.com/ajxudir/toolcatalog/pkg/constants"
	"github.com/ajxudir/toolcatalog/pkg/errors"
	"github.com/ajxudir/toolcatalog/pkg/testutil"
	"github.com/ajxudir/toolcatalog/pkg/verbose"
)

// TestRunCatalogValidate tests validating catalog files.
//
// It verifies:
//   - Valid files are reported with their counts
//   - Every file is checked even after a failure
//   - Any invalid file makes the command exit with the config error code
func TestRunCatalogValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", fixtureCatalog)
	bad := writeFile(t, dir, "bad.yml", "APIs:\n  toolsList:\n    - title: [a]\n")
	future := writeFile(t, dir, "future.json", `{"$schemaVersion": "v2.0.0"}`)

	t.Run("valid", func(t *testing.T) {
		out := testutil.CaptureStdout(t, func() {
			require.NoError(t, runCatalogValidate(catalogValidateCmd, []string{good}))
		})
		assert.Contains(t, out, constants.IconCheckmarkBox+" "+good+": 2 categories, 3 tools")
	})

	t.Run("mixed", func(t *testing.T) {
		var runErr error
		out := testutil.CaptureStdout(t, func() {
			runErr = runCatalogValidate(catalogValidateCmd, []string{bad, good, future})
		})
		require.Error(t, runErr)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(runErr))
		assert.Contains(t, runErr.Error(), "2 of 3 catalog files invalid")
		assert.Contains(t, out, constants.IconError+" "+bad)
		assert.Contains(t, out, "schema violations")
		assert.Contains(t, out, "unsupported schema version v2.0.0")
		assert.Contains(t, out, constants.IconCheckmarkBox+" "+good)
	})

	t.Run("verbose schema details", func(t *testing.T) {
		verbose.Enable()
		defer verbose.Disable()
		out := testutil.CaptureStdout(t, func() {
			_ = runCatalogValidate(catalogValidateCmd, []string{bad})
		})
		assert.Contains(t, out, "/APIs/toolsList/0/title")
	})
}

// TestCatalogSchemaCommand tests printing the embedded schema.
func TestCatalogSchemaCommand(t *testing.T) {
	out := testutil.CaptureStdout(t, func() {
		catalogSchemaCmd.Run(catalogSchemaCmd, nil)
	})
	assert.Contains(t, out, "toolsList")
	assert.Contains(t, out, "$schemaVersion")
}

// TestLoadCatalogUsesConfigLimit tests that the configured size limit applies.
func TestLoadCatalogUsesConfigLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tools.json", fixtureCatalog)

	cfg := &config.Config{WorkingDir: dir}
	cfg.Security.MaxCatalogFileSize = 16

	_, err := loadCatalog(cfg, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
}
