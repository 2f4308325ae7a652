package commands

import (
	"flag"
	"fmt"

	"github.com/agiangrant/salad"
)

// Symbols implements the 'salad symbols' command.
func Symbols(args []string) error {
	fs := flag.NewFlagSet("symbols", flag.ContinueOnError)
	group := fs.String("group", "", "only list the named group")
	required := fs.Bool("required", false, "only list entry points required in strict mode")
	count := fs.Bool("count", false, "print the number of entry points per group")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	groups := salad.Groups()
	if *group != "" {
		g, ok := groupByName(*group)
		if !ok {
			return fmt.Errorf("unknown group %q", *group)
		}
		groups = []salad.Group{g}
	}

	for _, g := range groups {
		if *required && !g.Required() {
			continue
		}
		if *count {
			fmt.Printf("%s\t%d\n", g, len(g.Procs()))
			continue
		}
		for _, p := range g.Procs() {
			fmt.Printf("%s\t%s\t%s\n", p, g, g.Header())
		}
	}
	return nil
}

func groupByName(name string) (salad.Group, bool) {
	for _, g := range salad.Groups() {
		if g.String() == name {
			return g, true
		}
	}
	return 0, false
}
