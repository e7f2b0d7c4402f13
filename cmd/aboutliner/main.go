package main

import (
	"os"
	"path/filepath"
	"strings"

	"aboutliner/internal/cli"
)

var documentExts = map[string]bool{
	".md": true, ".markdown": true, ".txt": true, ".outline": true,
	".json": true, ".tsv": true, ".tab": true, ".html": true, ".htm": true,
	".feature": true, ".xlsx": true,
}

func isDocumentPath(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && documentExts[strings.ToLower(filepath.Ext(s))]
}

// rewriteDirectViewArgs turns `aboutliner <file>` into `aboutliner view <file>`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten before
// parsing. Persistent flags may come first, so the first positional token is located
// rather than assumed to be argv[1].
func rewriteDirectViewArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--format":    true,
		"--log-level": true,
	}

	insertAt := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "view")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isDocumentPath(argv[i+1]) {
				return insertAt(i + 1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isDocumentPath(a) {
			return insertAt(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectViewArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
