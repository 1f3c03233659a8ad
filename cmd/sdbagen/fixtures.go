package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Write the canonical demo fixtures (F a, G a, G F a, a U b, multi-obligation, already-deterministic) to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", outDir, err)
		}
		for name, f := range canonicalFixtures() {
			data, err := json.MarshalIndent(f, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal %s: %w", name, err)
			}
			path := filepath.Join(outDir, name+".json")
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
	fixturesCmd.Flags().String("out", ".", "directory to write fixture JSON files into")
}

// canonicalFixtures returns the six worked scenarios used to validate the
// construction by hand: F a, G a, G F a, a U b, a two-obligation
// conjunction, and an already-semi-deterministic input the builder should
// pass through unchanged.
func canonicalFixtures() map[string]jsonFixture {
	return map[string]jsonFixture{
		"s1_eventually_a": {
			Atoms:      []string{"a"},
			VWAAStates: 2,
			VWAATT:     1,
			VWAAEdges: []jsonEdge{
				{Src: 0, Dst: []int{0}, Label: "!a", Acc: 0},
				{Src: 0, Dst: []int{1}, Label: "a", Acc: 1},
				{Src: 1, Dst: []int{1}, Label: "true", Acc: 0},
			},
			SkeletonSize: 1,
			StateNames:   []string{"0"},
			SkeletonEdges: []jsonEdge{
				{Src: 0, Dst: []int{0}, Label: "!a", Acc: 0},
			},
		},
		"s2_globally_a": {
			Atoms:      []string{"a"},
			VWAAStates: 1,
			VWAATT:     0,
			VWAAEdges: []jsonEdge{
				{Src: 0, Dst: []int{0}, Label: "a", Acc: 0},
			},
			SkeletonSize: 1,
			StateNames:   []string{"0"},
			SkeletonEdges: []jsonEdge{
				{Src: 0, Dst: []int{0}, Label: "a", Acc: 0},
			},
		},
		"s3_globally_eventually_a": {
			Atoms:      []string{"a"},
			VWAAStates: 1,
			VWAATT:     0,
			VWAAEdges: []jsonEdge{
				{Src: 0, Dst: []int{0}, Label: "a", Acc: 1},
				{Src: 0, Dst: []int{0}, Label: "!a", Acc: 0},
			},
			SkeletonSize: 1,
			StateNames:   []string{"0"},
			SkeletonEdges: []jsonEdge{
				{Src: 0, Dst: []int{0}, Label: "!a", Acc: 0},
			},
		},
		"s4_a_until_b": {
			Atoms:      []string{"a", "b"},
			VWAAStates: 2,
			VWAATT:     1,
			VWAAEdges: []jsonEdge{
				{Src: 0, Dst: []int{0}, Label: "a&!b", Acc: 0},
				{Src: 0, Dst: []int{1}, Label: "b", Acc: 1},
				{Src: 1, Dst: []int{1}, Label: "true", Acc: 0},
			},
			SkeletonSize: 1,
			StateNames:   []string{"0"},
			SkeletonEdges: []jsonEdge{
				{Src: 0, Dst: []int{0}, Label: "a&!b", Acc: 0},
			},
		},
		"s5_gfa_and_gfb": {
			Atoms:      []string{"a", "b"},
			VWAAStates: 3,
			VWAATT:     0,
			VWAAEdges: []jsonEdge{
				{Src: 0, Dst: []int{1, 2}, Label: "true", Acc: 0},
				{Src: 1, Dst: []int{1}, Label: "a", Acc: 1},
				{Src: 1, Dst: []int{1}, Label: "!a", Acc: 0},
				{Src: 2, Dst: []int{2}, Label: "b", Acc: 1},
				{Src: 2, Dst: []int{2}, Label: "!b", Acc: 0},
			},
			SkeletonSize:  1,
			StateNames:    []string{"0"},
			SkeletonEdges: nil,
		},
		"s6_already_deterministic": {
			Atoms:      []string{"a"},
			VWAAStates: 1,
			VWAATT:     0,
			VWAAEdges: []jsonEdge{
				{Src: 0, Dst: []int{0}, Label: "true", Acc: 1},
			},
			SkeletonSize: 1,
			StateNames:   []string{"0"},
			SkeletonEdges: []jsonEdge{
				{Src: 0, Dst: []int{0}, Label: "a", Acc: 1},
				{Src: 0, Dst: []int{0}, Label: "!a", Acc: 0},
			},
		},
	}
}
