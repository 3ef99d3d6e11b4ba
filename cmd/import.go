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
	"github.com/gnames/geodb/internal/ioimport"
	"github.com/gnames/geodb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getImportCmd() *cobra.Command {
	var (
		sourceDir string
		noInfo    bool
		noNames   bool
	)

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import GeoNames dumps into the database",
		Long: `Import GeoNames dump files into PostgreSQL.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Reads lookup tables: admin1CodesASCII, admin2Codes,
     featureCodes_en, countryInfo and cities1000
  3. Loads allCountries into place_infos, resolving ids of
     administrative areas, feature names and population
  4. Loads alternateNames into place_names

Every file can be a plain .txt file or a .zip archive with the same
base name. Dumps are available at
https://download.geonames.org/export/dump/

Old records of imported tables are removed.

Examples:
  geodb import
  geodb import --source-dir ~/data/geonames
  geodb import --no-names`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runImport(cmd, sourceDir, noInfo, noNames)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	importCmd.Flags().StringVarP(
		&sourceDir, "source-dir", "s", "",
		"directory with GeoNames dump files",
	)
	importCmd.Flags().BoolVar(
		&noInfo, "no-info", false,
		"skip import of allCountries into place_infos",
	)
	importCmd.Flags().BoolVar(
		&noNames, "no-names", false,
		"skip import of alternateNames into place_names",
	)

	return importCmd
}

func runImport(
	cmd *cobra.Command,
	sourceDir string,
	noInfo, noNames bool,
) error {
	ctx, stop := interruptContext()
	defer stop()

	importOpts := []config.Option{
		config.OptImportWithInfo(!noInfo),
		config.OptImportWithNames(!noNames),
	}
	if cmd.Flags().Changed("source-dir") {
		importOpts = append(importOpts, config.OptImportSourceDir(sourceDir))
	}
	cfg.Update(importOpts)

	op, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = requireSchema(ctx, op); err != nil {
		return err
	}

	gn.Info("Importing GeoNames dumps from <em>%s</em>", cfg.Import.SourceDir)
	im := ioimport.NewImporter(cfg, op)
	stats, err := im.Import(ctx)
	if err != nil {
		return err
	}

	if stats.Skipped > 0 {
		gn.Warn("Skipped %d malformed records, see log for details",
			stats.Skipped)
	}
	gn.Info(`Import complete

Next steps:
  - Run 'geodb build' to generate geolookup tables`)
	return nil
}
