// Command sdbagen is a demo CLI for exercising the breakpoint construction
// by hand: load a small JSON fixture describing a VWAA plus its
// nondeterministic-prefix skeleton, run the builder, and inspect the
// result as DOT or Mermaid.
package main

func main() {
	Execute()
}
