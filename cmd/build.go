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
	"github.com/gnames/geodb/internal/iobuild"
	"github.com/gnames/geodb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getBuildCmd returns the build command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBuildCmd() *cobra.Command {
	var (
		scriptPolicy string
		jobs         int
	)

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Generate geolookup tables from imported records",
		Long: `Build fully qualified names of places and geolookup tables.

This command:
  1. Removes old rows and indexes of geo_infos, geo_names, geo_links
  2. Expands every alternate name of a place with names of its
     administrative areas, choosing names that share language, flags
     and writing script with the place name
  3. Adds display names built from place names and ASCII names
  4. Creates indexes and removes duplicate names
  5. Saves statistics to ~/.cache/geodb/stats.yaml

Script policy decides what happens when an administrative area has
no name in the script of the place name:
  fallback  use the first suitable name (default)
  skip      leave the area out of the expanded name

Examples:
  geodb build
  geodb build --script-policy skip
  geodb build -j 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBuild(cmd, scriptPolicy, jobs)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	buildCmd.Flags().StringVarP(
		&scriptPolicy, "script-policy", "p", "",
		"fallback or skip names without a common script",
	)
	buildCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of concurrent workers",
	)

	return buildCmd
}

func runBuild(cmd *cobra.Command, scriptPolicy string, jobs int) error {
	ctx, stop := interruptContext()
	defer stop()

	var buildOpts []config.Option
	if cmd.Flags().Changed("script-policy") {
		buildOpts = append(buildOpts, config.OptBuildScriptPolicy(scriptPolicy))
	}
	if cmd.Flags().Changed("jobs") {
		buildOpts = append(buildOpts, config.OptJobsNumber(jobs))
	}
	cfg.Update(buildOpts)

	op, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = requireSchema(ctx, op); err != nil {
		return err
	}

	b := iobuild.NewBuilder(cfg, op)
	if _, err = b.Build(ctx); err != nil {
		return err
	}

	gn.Info(`Next steps:
  - Run 'geodb export' to create a SQLite file`)
	return nil
}
