// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package fileinfo

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	// MaxPreviewLines is the upper bound a caller may request.
	MaxPreviewLines = 200

	maxPreviewFileSize = 10 * 1024 * 1024
	maxPreviewChars    = 50_000
	sniffLen           = 512

	// PreviewUnavailable marks binary or undecodable content. It is a
	// marker, not an error: the rest of the record is still valid.
	PreviewUnavailable = "(preview unavailable: binary or undecodable content)"
	previewTooLarge    = "(file too large for preview)"
	previewTruncated   = "... [preview truncated]"
)

// textExtensions lists extensions safe to read as text.
var textExtensions = makeSet(
	// text & docs
	"txt", "md", "mdx", "rst", "adoc", "org",
	// python
	"py", "pyi", "pyw", "pyx", "pxd",
	// javascript / typescript
	"js", "mjs", "cjs", "ts", "mts", "cts", "jsx", "tsx",
	"vue", "svelte", "astro", "marko",
	// c family
	"c", "cpp", "cc", "cxx", "h", "hpp", "hxx", "cs", "java", "m", "mm",
	// systems languages
	"go", "rs", "rb", "php", "swift", "kt", "kts", "scala", "r", "lua",
	// shell
	"sh", "bash", "zsh", "fish", "ps1", "psm1", "psd1", "bat", "cmd",
	// database & query
	"sql", "prisma", "graphql", "gql",
	// web
	"html", "htm", "css", "scss", "sass", "less", "styl", "pcss",
	// data formats
	"json", "jsonc", "json5", "jsonl", "ndjson",
	"xml", "xsl", "xslt", "xsd", "svg", "rss", "atom",
	"yaml", "yml", "toml", "ini", "cfg", "conf", "env", "properties",
	"csv", "tsv", "log",
	// config files
	"gitignore", "gitattributes", "gitmodules", "npmrc", "nvmrc", "yarnrc",
	"dockerignore", "editorconfig", "eslintrc", "prettierrc", "babelrc",
	"stylelintrc", "browserslistrc",
	// build tools
	"makefile", "dockerfile", "cmake", "gradle", "sbt", "cabal", "bazel",
	// academic
	"tex", "bib", "cls", "sty",
	// hardware
	"asm", "s", "v", "sv", "vhd", "vhdl",
	// modern languages
	"dart", "zig", "nim", "hx", "odin", "jai", "vlang",
	// functional
	"ex", "exs", "erl", "hrl", "hs", "lhs", "ml", "mli", "fs", "fsi", "fsx",
	"clj", "cljs", "cljc", "edn", "lisp", "el", "rkt", "scm", "fnl",
	// other
	"pro", "pri", "qml", "proto", "thrift", "capnp",
	"tf", "hcl", "nix", "dhall", "jsonnet", "cue",
	"http", "rest", "lock",
)

// textFilenames lists extensionless names that are always text.
var textFilenames = makeSet(
	"makefile", "dockerfile", "cmakelists.txt", "rakefile", "gemfile",
	"procfile", "vagrantfile", "brewfile", "justfile", "taskfile",
	"license", "licence", "readme", "authors", "contributors",
	"changelog", "changes", "history", "news", "todo",
)

func makeSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

// isTextLike reports whether name suggests readable text content.
// Dotfiles are usually text.
func isTextLike(name string) bool {
	lower := strings.ToLower(baseName(name))
	if _, ok := textExtensions[extensionOf(lower)]; ok {
		return true
	}
	if _, ok := textFilenames[lower]; ok {
		return true
	}
	stem := strings.TrimSuffix(lower, "."+extensionOf(lower))
	if _, ok := textFilenames[stem]; ok {
		return true
	}
	return strings.HasPrefix(lower, ".")
}

// Preview returns the first maxLines lines of a text file, or a marker
// string when the content is binary, undecodable, or too large. It never
// returns an error: preview failure does not fail the record.
func Preview(path string, fi os.FileInfo, maxLines int) string {
	if maxLines < 1 {
		return ""
	}
	if maxLines > MaxPreviewLines {
		maxLines = MaxPreviewLines
	}
	if fi.Size() > maxPreviewFileSize {
		return previewTooLarge
	}

	f, err := os.Open(path)
	if err != nil {
		return PreviewUnavailable
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if !isTextLike(path) {
		// Sniff for binary content before committing to a text read.
		head, _ := r.Peek(sniffLen)
		if bytes.IndexByte(head, 0) >= 0 {
			return PreviewUnavailable
		}
	}

	var lines []string
	total := 0
	truncated := false
	for range maxLines {
		remaining := maxPreviewChars - total
		if remaining <= 0 {
			truncated = true
			break
		}
		// Bound each read so a single huge line cannot blow the budget.
		line, readErr := readLineBounded(r, remaining+1)
		if line == "" && readErr != nil {
			break
		}
		if len(line) > remaining {
			line = line[:remaining]
			truncated = true
		}
		total += len(line)
		lines = append(lines, decodeLine(strings.TrimRight(line, "\r\n")))
		if readErr != nil {
			break
		}
	}
	if truncated {
		lines = append(lines, previewTruncated)
	}
	return strings.Join(lines, "\n")
}

// readLineBounded reads up to limit bytes, stopping after a newline.
func readLineBounded(r *bufio.Reader, limit int) (string, error) {
	var b strings.Builder
	for b.Len() < limit {
		c, err := r.ReadByte()
		if err != nil {
			return b.String(), err
		}
		b.WriteByte(c)
		if c == '\n' {
			break
		}
	}
	return b.String(), nil
}

// decodeLine keeps valid UTF-8 as-is and falls back to the ANSI codepage,
// mirroring how es.exe output is decoded.
func decodeLine(line string) string {
	if utf8.ValidString(line) {
		return line
	}
	if decoded, err := charmap.Windows1252.NewDecoder().String(line); err == nil {
		return decoded
	}
	return strings.ToValidUTF8(line, "�")
}
