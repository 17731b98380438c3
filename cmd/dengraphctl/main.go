// Command dengraphctl is a small CLI around the dengraph library: it reads a
// CSV distance matrix, runs the clustering engine once in batch mode, and
// prints the resulting clusters and noise set.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rs/zerolog"

	"github.com/MaineKuehn/dengraph/csvloader"
	"github.com/MaineKuehn/dengraph/engine"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "dengraphctl",
		Short: "Run the dengraph clustering engine against a CSV distance matrix",
	}

	root.AddCommand(newVersionCmd(), newClusterCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dengraphctl v%s\n", version)
		},
	}
}

func newClusterCmd() *cobra.Command {
	var (
		eps         float64
		eta         int
		symmetric   bool
		maxDistance float64
		verbose     bool
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "cluster <matrix.csv>",
		Short: "Cluster the nodes of a CSV distance matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				p, err := loadParams(configPath)
				if err != nil {
					return err
				}
				eps, eta = p.Eps, p.Eta
			}
			return runCluster(args[0], eps, eta, symmetric, maxDistance, verbose)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&eps, "eps", 1.0, "cluster_distance: maximum distance for two nodes to be neighbours")
	flags.IntVar(&eta, "eta", 4, "core_neighbours: minimum neighbour count for a core node")
	flags.BoolVar(&symmetric, "symmetric", true, "treat the CSV matrix as symmetric (read only the upper triangle)")
	flags.Float64Var(&maxDistance, "max-distance", 0, "drop matrix cells above this distance (0 disables the filter)")
	flags.BoolVar(&verbose, "verbose", false, "log every role transition to stderr")
	flags.StringVar(&configPath, "config", "", "load (eps, eta) from a YAML file instead of --eps/--eta")

	return cmd
}

// loadParams reads (eps, eta) from a YAML config file via
// engine.ParamsFromYAML, for callers who prefer a checked-in config over
// repeating --eps/--eta on every invocation.
func loadParams(path string) (engine.Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return engine.Params{}, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()
	return engine.ParamsFromYAML(f)
}

func runCluster(path string, eps float64, eta int, symmetric bool, maxDistance float64, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	opts := []csvloader.Option[string]{
		csvloader.WithHeader[string](csvloader.HeaderLabels),
		csvloader.WithSymmetric[string](symmetric),
	}
	if maxDistance > 0 {
		opts = append(opts, csvloader.WithMaxDistance[string](maxDistance))
	}

	g, err := csvloader.Load[string](f, opts...)
	if err != nil {
		return fmt.Errorf("loading matrix: %w", err)
	}

	log := zerolog.Nop()
	if verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	e := engine.New[string](g, eps, eta, engine.WithLogger(log))

	clusters := e.Clusters()
	fmt.Printf("%d clusters, %d noise nodes\n", len(clusters), len(e.Noise()))
	for i, k := range clusters {
		fmt.Printf("cluster %d: %d core, %d border\n", i, k.CoreLen(), k.Len()-k.CoreLen())
		for _, v := range k.CoreNodes() {
			fmt.Printf("  core   %s\n", v)
		}
		for _, v := range k.BorderNodes() {
			fmt.Printf("  border %s\n", v)
		}
	}
	if len(e.Noise()) > 0 {
		fmt.Println("noise:")
		for _, v := range e.Noise() {
			fmt.Printf("  %s\n", v)
		}
	}
	return nil
}
