package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/arena/v2"
)

// newScenarioCommand walks through a small mixed-type allocation sequence,
// printing each handle and the page count after it.
func newScenarioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Allocate a few mixed values and show how pages are opened",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			a := arena.New()
			defer a.Release()

			fmt.Fprintf(out, "pages=%d\n", a.NumPages())
			i := arena.Alloc(a, 42)
			fmt.Fprintf(out, "alloc 42 -> %s = %d, pages=%d\n", i, *arena.Resolve(a, i), a.NumPages())
			s := arena.Alloc(a, "42")
			fmt.Fprintf(out, "alloc %q -> %s = %q, pages=%d\n", "42", s, *arena.Resolve(a, s), a.NumPages())
			f := arena.Alloc(a, 42.0)
			fmt.Fprintf(out, "alloc 42.0 -> %s = %.1f, pages=%d\n", f, *arena.Resolve(a, f), a.NumPages())
			for _, v := range []int{40, 2} {
				h := arena.Alloc(a, v)
				fmt.Fprintf(out, "alloc %d -> %s, pages=%d\n", v, h, a.NumPages())
			}
			return nil
		},
	}
}
