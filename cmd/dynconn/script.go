package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TrevorS/dynconn"
)

// runScript executes a connectivity command script from r against a fresh
// graph, writing one line per query to w. Mutation errors (absent edge,
// duplicate edge, bad vertex) abort the script with the offending line
// number.
func runScript(r io.Reader, w io.Writer, vertices int, src dynconn.PrioritySource) error {
	cfg := dynconn.DefaultConfig()
	cfg.PrioritySource = src
	g, err := dynconn.NewWithConfig(vertices, cfg)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runLine(g, w, line); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	return scanner.Err()
}

func runLine(g *dynconn.Graph, w io.Writer, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	parsePair := func() (int, int, error) {
		if len(args) != 2 {
			return 0, 0, fmt.Errorf("%s takes two vertex arguments", cmd)
		}
		u, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, 0, fmt.Errorf("bad vertex %q", args[0])
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("bad vertex %q", args[1])
		}
		return u, v, nil
	}

	switch cmd {
	case "add":
		u, v, err := parsePair()
		if err != nil {
			return err
		}
		return g.AddEdge(u, v)
	case "remove":
		u, v, err := parsePair()
		if err != nil {
			return err
		}
		return g.RemoveEdge(u, v)
	case "connected":
		u, v, err := parsePair()
		if err != nil {
			return err
		}
		ok, err := g.IsConnected(u, v)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, ok)
		return nil
	case "components":
		if len(args) != 0 {
			return fmt.Errorf("components takes no arguments")
		}
		fmt.Fprintln(w, g.ComponentCount())
		return nil
	case "maxlevel":
		if len(args) != 0 {
			return fmt.Errorf("maxlevel takes no arguments")
		}
		fmt.Fprintln(w, g.MaxLevel())
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
