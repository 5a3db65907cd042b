package main

import (
	"testing"

	"github.com/fatih/color"
)

func TestColorizeKinds(t *testing.T) {
	on := color.New(color.FgCyan)
	on.EnableColor()
	off := color.New(color.FgCyan)
	off.DisableColor()

	for _, tc := range []struct {
		name string
		c    *color.Color
		in   string
		want string
	}{
		{"json", on,
			`{"kind": "Document", "definitions": []}`,
			"{\"kind\": \"\x1b[36mDocument\x1b[0m\", \"definitions\": []}"},
		{"yaml", on,
			"kind: Field\nname:\n  kind: Name\n",
			"kind: \x1b[36mField\x1b[0m\nname:\n  kind: \x1b[36mName\x1b[0m\n"},
		{"disabled leaves the document alone", off,
			`{"kind": "Document"}`,
			`{"kind": "Document"}`},
		{"non-kind keys untouched", on,
			`{"name": "kindred"}`,
			`{"name": "kindred"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := colorizeKinds(tc.in, tc.c); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDiffColorsLine(t *testing.T) {
	on := newDiffColors(true)
	off := newDiffColors(false)

	for _, tc := range []struct {
		name string
		c    *diffColors
		in   string
		want string
	}{
		{"removal", on, `- "a"`, "\x1b[31m- \"a\"\x1b[0m"},
		{"addition", on, `+ "b"`, "\x1b[32m+ \"b\"\x1b[0m"},
		{"change", on, "~ x Name -> Field", "\x1b[33m~ x Name -> Field\x1b[0m"},
		{"context stays plain", on, `  "c"`, `  "c"`},
		{"disabled", off, `- "a"`, `- "a"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.line(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
