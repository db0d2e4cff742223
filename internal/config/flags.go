package config

import "flag"

// ParseFlags applies command-line flags over base and returns the
// target path: the first positional argument, or the configured
// analyze default. Flags bind on either side of the path.
func ParseFlags(base Config, args []string) (Config, string) {
	flags := flag.NewFlagSet("burrow", flag.ExitOnError)
	top := flags.Int("top", base.Top, "entries shown in the flat report")
	tui := flags.Bool("tui", base.TUI, "open the interactive explorer")
	assumeYes := flags.Bool("yes", base.AssumeYes, "assume yes on confirmation prompts")
	noCache := flags.Bool("no-cache", !base.CacheListings, "disable the listing cache")
	_ = flags.Parse(args)

	path := base.AnalyzePath
	if flags.NArg() > 0 {
		// Parsing stops at the first positional; rebind anything
		// placed after the path.
		rest := flags.Args()
		path = rest[0]
		_ = flags.Parse(rest[1:])
	}

	base.TUI = *tui
	base.AssumeYes = *assumeYes
	base.CacheListings = !*noCache
	if *top > 0 {
		base.Top = *top
	}
	return base, path
}
