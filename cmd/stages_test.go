package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStageCmds_Flags verifies flags of import, build and export.
func TestStageCmds_Flags(t *testing.T) {
	tests := []struct {
		msg       string
		cmd       func() *cobra.Command
		flag      string
		shorthand string
		defValue  string
	}{
		{"import source-dir", getImportCmd, "source-dir", "s", ""},
		{"import no-info", getImportCmd, "no-info", "", "false"},
		{"import no-names", getImportCmd, "no-names", "", "false"},
		{"build script-policy", getBuildCmd, "script-policy", "p", ""},
		{"build jobs", getBuildCmd, "jobs", "j", "0"},
		{"export sqlite-path", getExportCmd, "sqlite-path", "o", ""},
		{"export upload", getExportCmd, "upload", "u", "false"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			f := v.cmd().Flags().Lookup(v.flag)
			require.NotNil(t, f, v.msg)
			assert.Equal(t, v.shorthand, f.Shorthand, v.msg)
			assert.Equal(t, v.defValue, f.DefValue, v.msg)
		})
	}
}

// TestStageCmds_HelpText verifies examples in help of every stage.
func TestStageCmds_HelpText(t *testing.T) {
	tests := []struct {
		msg      string
		cmd      func() *cobra.Command
		contains []string
	}{
		{
			"import", getImportCmd,
			[]string{"geodb import", "--source-dir", "--no-names"},
		},
		{
			"build", getBuildCmd,
			[]string{"geodb build", "--script-policy", "skip"},
		},
		{
			"export", getExportCmd,
			[]string{"geodb export", "--sqlite-path", "--upload"},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cmd := v.cmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{"--help"})

			err := cmd.Execute()
			require.NoError(t, err)

			help := buf.String()
			assert.Contains(t, help, "Examples:")
			for _, s := range v.contains {
				assert.Contains(t, help, s, v.msg)
			}
		})
	}
}
