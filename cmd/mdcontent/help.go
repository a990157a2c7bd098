package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdcontent <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render content pages to HTML")
	fmt.Fprintln(w, "  raw        Print a page with anchor links rewritten")
	fmt.Fprintln(w, "  check      Report pages that fail to build or link to missing anchors")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdcontent help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every content command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -r, --root <dir>          Content root (env: "+envRoot+", default: ./content)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (env: "+envConfig+")")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Per-file read timeout (default: 10s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdcontent render [file...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render content pages to HTML. Files are relative to the content root.")
	fmt.Fprintln(w, "Without files, every .md page under the root is rendered and drafts")
	fmt.Fprintln(w, "are skipped.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       .html file for one page, directory otherwise")
	fmt.Fprintln(w, "                            (one page without --output prints to stdout)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --drafts              Include pages marked draft")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "HTML:")
	fmt.Fprintln(w, "      --standalone          Wrap pages in a complete HTML document")
	fmt.Fprintln(w, "      --hard-wraps          Render single newlines as <br>")
	fmt.Fprintln(w, "      --style <name>        Code highlight style (default: github)")
	fmt.Fprintln(w, "      --asset-prefix <url>  URL prefix for relative images")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printRawUsage prints usage for the raw command.
func printRawUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdcontent raw <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print a page's markdown with in-page anchor links rewritten to routes,")
	fmt.Fprintln(w, "e.g. [Book](#consultation) -> [Book](/book-a-consultation).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdcontent check [file...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build every page and report load failures and links to in-page anchors")
	fmt.Fprintln(w, "that do not exist. Exits 1 when a page fails to build.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --json                Print the report as JSON")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "raw":
		printRawUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdcontent version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdcontent help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
