package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/TrevorS/dynconn"
)

func newBenchCmd() *cobra.Command {
	var (
		vertices int
		edges    int
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a complete-graph fill/drain and a random workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout(), vertices, edges, seed)
		},
	}
	cmd.Flags().IntVarP(&vertices, "vertices", "n", 512, "number of vertices")
	cmd.Flags().IntVar(&edges, "edges", 100000, "edge cap for both workloads")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for priorities and the random workload")
	return cmd
}

func runBench(w io.Writer, n, edgeCap int, seed int64) error {
	// Complete graph, capped: insert edges of K_n in lexicographic order,
	// then remove them in insertion order.
	cfg := dynconn.DefaultConfig()
	cfg.PrioritySource = sourceForSeed(seed)
	g, err := dynconn.NewWithConfig(n, cfg)
	if err != nil {
		return err
	}
	var pairs [][2]int
	for u := 0; u < n && len(pairs) < edgeCap; u++ {
		for v := u + 1; v < n && len(pairs) < edgeCap; v++ {
			pairs = append(pairs, [2]int{u, v})
		}
	}
	start := time.Now()
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return err
		}
	}
	fill := time.Since(start)
	start = time.Now()
	for _, p := range pairs {
		if err := g.RemoveEdge(p[0], p[1]); err != nil {
			return err
		}
	}
	drain := time.Since(start)
	fmt.Fprintf(w, "complete graph: %d edges, fill %v, drain %v\n", len(pairs), fill, drain)

	// Random unique edges, inserted then removed in insertion order.
	cfg.PrioritySource = sourceForSeed(seed)
	g, err = dynconn.NewWithConfig(n, cfg)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[[2]int]bool)
	var random [][2]int
	for len(random) < edgeCap/2 {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if u == v {
			continue
		}
		if v < u {
			u, v = v, u
		}
		if seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true
		random = append(random, [2]int{u, v})
	}
	start = time.Now()
	for _, p := range random {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return err
		}
	}
	fill = time.Since(start)
	start = time.Now()
	for _, p := range random {
		if err := g.RemoveEdge(p[0], p[1]); err != nil {
			return err
		}
	}
	drain = time.Since(start)
	fmt.Fprintf(w, "random edges: %d edges, fill %v, drain %v\n", len(random), fill, drain)
	return nil
}
