package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/toolcatalog/pkg/constants"
	"github.com/ajxudir/toolcatalog/pkg/errors"
	"github.com/ajxudir/toolcatalog/pkg/testutil"
)

func resetConfigFlags(t *testing.T, dir string) {
	t.Helper()
	oldDefaults, oldEffective, oldInit, oldValidate := configShowDefaultsFlag, configShowEffectiveFlag, configInitFlag, configValidateFlag
	oldPath, oldDir := configPathFlag, configDirFlag
	t.Cleanup(func() {
		configShowDefaultsFlag, configShowEffectiveFlag, configInitFlag, configValidateFlag = oldDefaults, oldEffective, oldInit, oldValidate
		configPathFlag, configDirFlag = oldPath, oldDir
	})
	configShowDefaultsFlag, configShowEffectiveFlag, configInitFlag, configValidateFlag = false, false, false, false
	configPathFlag, configDirFlag = "", dir
}

// TestValidateConfigFile tests the config --validate command.
//
// It verifies:
//   - A valid file is reported as valid
//   - Warnings are listed without failing
//   - Unknown fields fail with the config error code
//   - A missing file fails with the config error code
func TestValidateConfigFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  bool
		contains []string
	}{
		{
			name:     "valid",
			content:  "defaults:\n  languages: [Go]\n",
			contains: []string{constants.IconCheckmarkBox + " Configuration valid:"},
		},
		{
			name:     "warnings",
			content:  "defaults:\n  paid: cheap\n",
			contains: []string{"Configuration valid with warnings", "WARNING: defaults.paid: unknown value 'cheap'"},
		},
		{
			name:     "unknown field",
			content:  "defaults:\n  langs: [Go]\n",
			wantErr:  true,
			contains: []string{"ERROR: unknown field 'langs'", "Run with --verbose"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			resetConfigFlags(t, dir)
			writeFile(t, dir, constants.ConfigFileName, tt.content)

			var runErr error
			out := testutil.CaptureStdout(t, func() {
				runErr = validateConfigFile()
			})
			if tt.wantErr {
				require.Error(t, runErr)
				assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(runErr))
			} else {
				require.NoError(t, runErr)
			}
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		resetConfigFlags(t, t.TempDir())
		err := validateConfigFile()
		require.Error(t, err)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	})
}

// TestCreateConfigTemplate tests config --init.
func TestCreateConfigTemplate(t *testing.T) {
	dir := t.TempDir()
	resetConfigFlags(t, dir)
	configInitFlag = true

	out := testutil.CaptureStdout(t, func() {
		require.NoError(t, runConfig(configCmd, nil))
	})
	path := filepath.Join(dir, constants.ConfigFileName)
	assert.Contains(t, out, "Created configuration template: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "catalog:")

	err = createConfigTemplate(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

// TestCreateConfigTemplateWriteError tests a failing write.
func TestCreateConfigTemplateWriteError(t *testing.T) {
	oldWrite := writeFileFunc
	defer func() { writeFileFunc = oldWrite }()
	writeFileFunc = func(string, []byte, os.FileMode) error { return os.ErrPermission }

	err := createConfigTemplate(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config file")
}

// TestShowConfig tests --show-defaults and --show-effective.
func TestShowConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		resetConfigFlags(t, t.TempDir())
		configShowDefaultsFlag = true
		out := testutil.CaptureStdout(t, func() {
			require.NoError(t, runConfig(configCmd, nil))
		})
		assert.Contains(t, out, "Default configuration:")
		assert.Contains(t, out, "paid: all")
	})

	t.Run("effective from file", func(t *testing.T) {
		dir := t.TempDir()
		resetConfigFlags(t, dir)
		path := writeFile(t, dir, constants.ConfigFileName, "catalog: [\"catalogs/*.json\"]\noutput:\n  format: json\n")
		configShowEffectiveFlag = true

		out := testutil.CaptureStdout(t, func() {
			require.NoError(t, runConfig(configCmd, nil))
		})
		assert.Contains(t, out, "Source: "+path)
		assert.Contains(t, out, "Catalog: catalogs/*.json (relative to "+dir+")")
		assert.Contains(t, out, "Output Format: json")
	})

	t.Run("effective built-in", func(t *testing.T) {
		resetConfigFlags(t, t.TempDir())
		configShowEffectiveFlag = true
		out := testutil.CaptureStdout(t, func() {
			require.NoError(t, runConfig(configCmd, nil))
		})
		assert.Contains(t, out, "Source: built-in defaults")
		assert.Contains(t, out, "Catalog: "+constants.EmbeddedCatalogSource)
	})
}

// TestLoadAndValidateConfig tests the preflight check used by every command.
//
// It verifies:
//   - A missing local config falls back to defaults
//   - A missing explicit --config path is an error
//   - An invalid local config stops the command
func TestLoadAndValidateConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadAndValidateConfig("", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.WorkingDir)
	assert.True(t, cfg.UsesEmbeddedCatalog())

	_, err = loadAndValidateConfig(filepath.Join(dir, "nope.yml"), dir)
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))

	writeFile(t, dir, constants.ConfigFileName, "output:\n  format: yaml\n")
	_, err = loadAndValidateConfig("", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format 'yaml'")
}
