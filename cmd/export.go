/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/geodb/internal/ioexport"
	"github.com/gnames/geodb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getExportCmd() *cobra.Command {
	var (
		sqlitePath string
		upload     bool
	)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export geolookup tables to SQLite",
		Long: `Export geolookup tables to a standalone SQLite file.

This command:
  1. Creates a new SQLite file (default ~/.cache/geodb/geodata.db)
  2. Copies geo_infos, geo_names and geo_links from PostgreSQL
  3. Creates lookup indexes
  4. With --upload, puts the file to S3-compatible storage
     configured in the export.s3 section of config.yaml

Examples:
  geodb export
  geodb export --sqlite-path /tmp/geodata.db
  geodb export --upload`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(cmd, sqlitePath, upload)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringVarP(
		&sqlitePath, "sqlite-path", "o", "",
		"location of the SQLite file",
	)
	exportCmd.Flags().BoolVarP(
		&upload, "upload", "u", false,
		"upload the SQLite file to S3",
	)

	return exportCmd
}

func runExport(cmd *cobra.Command, sqlitePath string, upload bool) error {
	ctx, stop := interruptContext()
	defer stop()

	exportOpts := []config.Option{config.OptExportUpload(upload)}
	if cmd.Flags().Changed("sqlite-path") {
		exportOpts = append(exportOpts, config.OptExportSQLitePath(sqlitePath))
	}
	cfg.Update(exportOpts)

	op, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = requireSchema(ctx, op); err != nil {
		return err
	}

	e := ioexport.NewExporter(cfg, op)
	if _, err = e.Export(ctx); err != nil {
		return err
	}

	if !upload && cfg.Export.S3.Configured() {
		gn.Info("S3 storage is configured, use <em>--upload</em> to publish the file")
	}
	return nil
}
