// Command osmmerge collapses collinear vertices, solitary untagged nodes
// and nearby node clusters in an already-synthesized OSM XML file (§4.6).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/osmroutegen/internal/config"
	"github.com/dshills/osmroutegen/internal/model"
	"github.com/dshills/osmroutegen/internal/pipeline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "osmmerge PATH_TO_FILE.osm",
		Short:         "Merge nearby nodes and collapse collinear vertices in an OSM XML file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			inPath := args[0]
			outPath := outputPath(inPath, "__merged.osm")
			if outPath == inPath {
				err := fmt.Errorf("input and output path are identical: %w", model.ErrConfigInvalid)
				log.WithError(err).Error("invalid configuration")
				return err
			}

			tol, err := config.Load(configPath)
			if err != nil {
				log.WithError(err).Error("loading tolerances config")
				return err
			}

			in, err := os.Open(inPath)
			if err != nil {
				err = fmt.Errorf("opening %s: %w: %w", inPath, model.ErrInputMalformed, err)
				log.WithError(err).Error("reading input")
				return err
			}
			defer in.Close()

			tags, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("reopening %s: %w", inPath, err)
			}
			defer tags.Close()

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer out.Close()

			if err := pipeline.RunMerge(log, in, tags, out, tol, true); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a tolerances YAML file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	return cmd
}

func outputPath(inPath, suffix string) string {
	ext := ".osm"
	base := strings.TrimSuffix(inPath, ext)
	return base + suffix
}
