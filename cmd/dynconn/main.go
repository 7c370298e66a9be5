package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/TrevorS/dynconn"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dynconn",
		Short:         "Fully-dynamic connectivity over an edge script",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newBenchCmd())
	return root
}

// sourceForSeed returns nil for seed 0 so the library falls back to its
// clock-seeded default.
func sourceForSeed(seed int64) dynconn.PrioritySource {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

func newRunCmd() *cobra.Command {
	var (
		vertices int
		seed     int64
		file     string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a connectivity command script",
		Long: `Execute a connectivity command script, one command per line:

  add <u> <v>        insert edge {u, v}
  remove <u> <v>     delete edge {u, v}
  connected <u> <v>  print whether u and v are connected
  components         print the number of connected components
  maxlevel           print the highest edge level reached

Blank lines and lines starting with # are ignored. Query results are
printed one per line in script order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runScript(in, cmd.OutOrStdout(), vertices, sourceForSeed(seed))
		},
	}
	cmd.Flags().IntVarP(&vertices, "vertices", "n", 0, "number of vertices (required)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "priority seed; 0 means seed from the clock")
	cmd.Flags().StringVarP(&file, "file", "f", "", "script file (default: stdin)")
	cmd.MarkFlagRequired("vertices")
	return cmd
}
