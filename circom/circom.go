// Package circom serializes assembled table sets as a circom dispatch
// function. The textual layout is consumed verbatim by downstream circuits,
// so it is reproduced byte for byte: tabs for indentation, one branch per
// (window, lane) pair, and a degenerate default branch.
package circom

import (
	"fmt"
	"io"

	"github.com/nope-zk/grom/rom"
)

// Generate builds every window in order and streams the complete function
//
//	function GROM<l>(i, r) { ... }
//
// to w. Any build failure aborts the run; nothing useful has been emitted by
// then, so partial output is not a concern for the caller beyond discarding
// it.
func Generate(w io.Writer, b *rom.Builder) error {
	if _, err := fmt.Fprintf(w, "pragma circom 2.0.0;\n\nfunction GROM%d(i, r) {\n", b.L()); err != nil {
		return err
	}
	for k := 0; k < b.WindowCount(); k++ {
		ws, err := b.BuildWindow(k)
		if err != nil {
			return err
		}
		if err := writeWindow(w, ws); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\t} else { return [[0],[0]]; }\n}\n")
	return err
}

func writeWindow(w io.Writer, ws *rom.WindowSet) error {
	for r, tables := range ws.Lanes {
		head := "\t} else if"
		if ws.K == 0 && r == 0 {
			head = "\tif"
		}
		if _, err := fmt.Fprintf(w, "%s(i == %d && r == %d) {\n\t\treturn [\n", head, ws.K, r); err != nil {
			return err
		}
		for i, coeffs := range tables {
			if _, err := io.WriteString(w, "\t\t\t["); err != nil {
				return err
			}
			for j := range coeffs {
				sep := ","
				if j == len(coeffs)-1 {
					sep = ""
				}
				if _, err := io.WriteString(w, coeffs[j].Text(10)+sep); err != nil {
					return err
				}
			}
			line := "],\n"
			if i == len(tables)-1 {
				line = "]\n"
			}
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\t\t];\n"); err != nil {
			return err
		}
	}
	return nil
}
