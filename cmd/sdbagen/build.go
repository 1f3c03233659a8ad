package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rfielding/ltl2sdba/sdba"
	"github.com/rfielding/ltl2sdba/viz"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <fixture.json>",
	Short: "Run the breakpoint construction over a fixture and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		dot, _ := cmd.Flags().GetBool("dot")
		mermaid, _ := cmd.Flags().GetBool("mermaid")

		_, v, skeleton, err := loadFixture(args[0])
		if err != nil {
			return err
		}

		var opts []sdba.Option
		if debug {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			opts = append(opts, sdba.WithDebug(true), sdba.WithLogger(logger))
		}

		out, err := sdba.Build(v, skeleton, opts...)
		if err != nil {
			return fmt.Errorf("build: %w", err)
		}

		switch {
		case dot:
			return viz.WriteDOT(out, os.Stdout)
		case mermaid:
			return viz.WriteMermaid(out, os.Stdout)
		default:
			printSummary(out)
		}
		return nil
	},
}

func printSummary(a *sdba.Automaton) {
	fmt.Printf("states: %d (nondeterministic prefix: %d, deterministic tail: %d)\n",
		a.NumStates(), a.NumNondet, a.NumStates()-a.NumNondet)
	fmt.Printf("deterministic: %v, complete: %v\n", a.Deterministic, a.Complete)
	if traps := sdba.TrapStates(a); len(traps) > 0 {
		fmt.Printf("trap states (cannot reach an accepting edge): %v\n", traps)
	}
	for src := 0; src < a.NumStates(); src++ {
		for _, e := range a.Edges(src) {
			mark := ""
			if e.Acc == 1 {
				mark = " !"
			}
			fmt.Printf("  %d --[%s%s]--> %d\n", src, e.Label.String(), mark, e.Dst)
		}
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().Bool("dot", false, "print Graphviz DOT instead of a text summary")
	buildCmd.Flags().Bool("mermaid", false, "print a Mermaid stateDiagram-v2 instead of a text summary")
}
