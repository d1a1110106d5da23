package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdtools/gdsc/config"
	"github.com/gdtools/gdsc/pkg/gdscript/ast"
	perrors "github.com/gdtools/gdsc/pkg/gdscript/errors"
	"github.com/gdtools/gdsc/pkg/gdscript/gdscript"
	"github.com/gdtools/gdsc/pkg/gdscript/parser"
	"github.com/gdtools/gdsc/pkg/gdscript/repl"
)

// Version is set at compile time via -ldflags
var Version = "0.3.1"

var (
	// Display flags
	helpFlag        = flag.Bool("h", false, "Show help message")
	helpLongFlag    = flag.Bool("help", false, "Show help message")
	versionFlag     = flag.Bool("V", false, "Show version information")
	versionLongFlag = flag.Bool("version", false, "Show version information")

	// Parsing flags
	evalFlag     = flag.String("e", "", "Parse an inline snippet")
	evalLongFlag = flag.String("eval", "", "Parse an inline snippet")
	checkFlag    = flag.Bool("check", false, "Check syntax, printing one path:STATUS line per file")
	watchFlag    = flag.Bool("watch", false, "Watch a directory and re-parse scripts on change")
	configFlag   = flag.String("config", "", "Path to gdsc.yml (default: ./gdsc.yml if present)")
)

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}
	if *versionFlag || *versionLongFlag {
		fmt.Printf("gdsc version %s\n", Version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	snippet := *evalFlag
	if snippet == "" {
		snippet = *evalLongFlag
	}

	switch {
	case snippet != "":
		os.Exit(parseInline(snippet))
	case *checkFlag:
		if len(flag.Args()) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --check requires at least one file or directory")
			os.Exit(2)
		}
		os.Exit(checkPaths(flag.Args(), cfg))
	case *watchFlag:
		root := "."
		if len(flag.Args()) > 0 {
			root = flag.Args()[0]
		}
		os.Exit(watchPath(root, cfg))
	case len(flag.Args()) > 0:
		os.Exit(parsePath(flag.Args()[0], cfg))
	default:
		repl.Start(os.Stdout, Version)
	}
}

// parseInline parses a snippet given on the command line and prints
// its tree.
func parseInline(snippet string) int {
	block, perr := parser.ParseFile(snippet)
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.Error())
		return 1
	}
	fmt.Print(ast.Dump(block))
	return 0
}

// parsePath parses a file or a directory of scripts. Single-file mode
// prints the tree; directory mode prints one status line per script.
func parsePath(path string, cfg *config.Config) int {
	fsys := enumerator(cfg)
	if err := gdscript.ParsePath(fsys, path, cfg.Extension, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// checkPaths checks the syntax of files or directories without
// printing trees, one path:STATUS line per script.
func checkPaths(paths []string, cfg *config.Config) int {
	fsys := enumerator(cfg)
	exit := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", perrors.MissingPath(path))
			exit = 2
			continue
		}
		if info.IsDir() {
			reports, derr := gdscript.ParseDir(fsys, path, cfg.Extension, os.Stdout)
			if derr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", derr)
				exit = 2
				continue
			}
			for _, r := range reports {
				if r.Err != nil && exit == 0 {
					exit = 1
				}
			}
			continue
		}
		r := gdscript.Report{Path: path}
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			r.Err = rerr
		} else if _, perr := parser.ParseFile(string(data)); perr != nil {
			r.Err = perr
		}
		fmt.Printf("%s:%s\n", r.Path, r.Status())
		if r.Err != nil && exit == 0 {
			exit = 1
		}
	}
	return exit
}

// watchPath re-parses scripts under root as they change, until
// interrupted.
func watchPath(root string, cfg *config.Config) int {
	w, err := NewWatcher(root, cfg.Extension, cfg.Watch.Debounce(), os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := w.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

func enumerator(cfg *config.Config) gdscript.FileEnumerator {
	if len(cfg.Exclude) > 0 {
		return gdscript.Excluding{FS: gdscript.OSFS{}, Segments: cfg.Exclude}
	}
	return gdscript.OSFS{}
}

func printHelp() {
	fmt.Printf(`gdsc - GDScript parser version %s

Usage:
  gdsc [options] [path]
  gdsc -e "snippet"
  gdsc --check <path>...
  gdsc --watch [dir]

With a file path, gdsc parses the script and prints its tree.
With a directory path, gdsc parses every script under it and prints
one path:STATUS line per file.
With no arguments, gdsc starts an interactive parse loop.

Options:
  -h, --help            Show this help message
  -V, --version         Show version information
  -e, --eval <snippet>  Parse an inline snippet and print its tree
  --check               Check syntax without printing trees
  --watch               Re-parse scripts as they change
  --config <path>       Path to gdsc.yml (default: ./gdsc.yml if present)

Configuration (gdsc.yml):
  extension: ".gd"      Script extension for directory mode
  exclude: [addons]     Path segments to skip in directory mode
  watch:
    debounce_ms: 100    Change-event debounce window

Exit codes:
  0  all scripts parsed
  1  at least one script failed to parse
  2  usage, path, or configuration error
`, Version)
}
