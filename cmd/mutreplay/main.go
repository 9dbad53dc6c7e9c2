/*
Command mutreplay replays a scenario of tree mutations against an HTML
document and prints the semantic events reported by the observations of
the scenario.

	mutreplay run --html page.html scenario.yaml

A scenario looks like this:

	observe:
	  - element: div
	  - attribute: { selector: span, name: class }
	steps:
	  - append: { parent: main, tag: div, id: d1 }
	  - set-attr: { id: s1, name: class, value: active }
	  - flush: true
	  - remove: { id: d1 }

Every output line holds the number of the flush, the observation, the kind
of event and the element.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/treewatch/dom"
	"github.com/npillmayer/treewatch/workqueue"
	"github.com/spf13/cobra"
)

var (
	htmlPath string
	dumpTree bool
	maxBatch int
)

var rootCmd = &cobra.Command{
	Use:   "mutreplay",
	Short: "Replay tree mutations and print the resulting events",
}

var runCmd = &cobra.Command{
	Use:   "run [scenario.yaml]",
	Short: "Replay a scenario against an HTML document",
	Long: `Parse an HTML document, register the observations of a scenario
and replay the scenario's steps. Events are printed whenever the work
queue is flushed.

Examples:
  mutreplay run --html page.html scenario.yaml
  mutreplay run --html page.html --dump --max-batch 10 scenario.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runScenario,
}

func init() {
	runCmd.Flags().StringVar(&htmlPath, "html", "", "HTML document to observe")
	runCmd.Flags().BoolVar(&dumpTree, "dump", false, "print the document tree after the replay")
	runCmd.Flags().IntVar(&maxBatch, "max-batch", 0, "maximum number of records per batch (0 = unlimited)")
	runCmd.MarkFlagRequired("html")
	rootCmd.AddCommand(runCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := LoadScenario(args[0])
	if err != nil {
		return err
	}
	f, err := os.Open(htmlPath)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	runner := NewRunner(doc, out, workqueue.MaxBatch(maxBatch))
	if err := runner.Run(sc); err != nil {
		return err
	}
	if dumpTree {
		fmt.Fprintln(out, dom.Dump(doc))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
