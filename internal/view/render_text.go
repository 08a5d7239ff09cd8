package view

import (
	"bufio"
	"io"
	"strings"
)

// RenderText writes s as plain text. Output depends only on s and opts.
func RenderText(w io.Writer, s State, opts RenderOptions) error {
	bw := bufio.NewWriter(w)
	if opts.Alert != "" {
		bw.WriteString("[!] " + opts.Alert + "\n\n")
	}
	if s.Status() == StatusLoading {
		bw.WriteString(opts.Loading() + "\n")
		return bw.Flush()
	}

	bw.WriteString(Title + "\n")
	if banner := opts.Banner(s); banner != "" {
		bw.WriteString("\nerror: " + banner + "\n")
	}
	if d := s.Draft(); !d.Empty() {
		bw.WriteString("\ndraft: " + d.Title + "\n")
		writeIndented(bw, d.Content)
	}
	bw.WriteString("\n")

	if s.Len() == 0 {
		bw.WriteString(opts.Placeholder() + "\n")
		return bw.Flush()
	}
	for i, n := range s.notes {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString("[" + n.ID.String() + "] " + n.Title + "\n")
		writeIndented(bw, n.Content)
		bw.WriteString("    " + opts.Date(n) + "\n")
	}
	return bw.Flush()
}

func writeIndented(bw *bufio.Writer, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		bw.WriteString("    " + line + "\n")
	}
}
