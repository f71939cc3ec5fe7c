// Command osmroutegen synthesizes indoor navigation ways from an OSM XML
// file of rooms, barriers, doors and vertical connectors.
package main

import (
	"context"
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
		doorToDoor   bool
		simplifyWays bool
		noPrettyPrint bool
		configPath   string
		debugSVGDir  string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:           "osmroutegen PATH_TO_FILE.osm",
		Short:         "Synthesize indoor navigation ways from an OSM XML file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			inPath := args[0]
			outPath := outputPath(inPath, "__routes.osm")
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
			opts := config.RouteOptions{
				DoorToDoor:   doorToDoor,
				SimplifyWays: simplifyWays,
				PrettyPrint:  !noPrettyPrint,
				DebugSVGDir:  debugSVGDir,
			}

			in, err := os.Open(inPath)
			if err != nil {
				err = fmt.Errorf("opening %s: %w: %w", inPath, model.ErrInputMalformed, err)
				log.WithError(err).Error("reading input")
				return err
			}
			defer in.Close()

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer out.Close()

			if err := pipeline.Run(context.Background(), log, in, out, tol, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&doorToDoor, "door-to-door", false, "also emit direct door-to-door shortcut ways (Phase F)")
	cmd.Flags().BoolVar(&simplifyWays, "simplify-ways", false, "drop interior way vertices whose shortcut stays inside the room (Phase D.2)")
	cmd.Flags().BoolVar(&noPrettyPrint, "no-pretty-print", false, "write compact XML instead of indented")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a tolerances YAML file")
	cmd.Flags().StringVar(&debugSVGDir, "debug-svg", "", "write one debug SVG per room to this directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	return cmd
}

// outputPath derives "<base><suffix>" from "<base>.osm": a trailing ".osm"
// is stripped and suffix is appended as given.
func outputPath(inPath, suffix string) string {
	ext := ".osm"
	base := strings.TrimSuffix(inPath, ext)
	return base + suffix
}
