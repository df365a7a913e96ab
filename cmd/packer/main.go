package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/binpack/pack"
)

func main() {
	var (
		template    = flag.String("t", "", "Pack template (e.g. \"n2 A8\")")
		valuesStr   = flag.String("v", "", "Values to pack (comma-separated)")
		hexInput    = flag.String("x", "", "Hex-encoded input for unpack")
		unpackMode  = flag.Bool("u", false, "Unpack instead of pack")
		firstOnly   = flag.Bool("first", false, "Unpack only the first value")
		presetName  = flag.String("p", "", "Use a named template preset")
		presetsFile = flag.String("presets", "", "Path to a TOML presets file")
		listPresets = flag.Bool("list", false, "List available presets and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*presetsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	presets, err := loadPresets(*presetsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *listPresets {
		for _, p := range presets.Sorted() {
			fmt.Printf("%-16s %-20q %s\n", p.Name, p.Template, p.Description)
		}
		return
	}

	tmpl := *template
	if *presetName != "" {
		p, ok := presets.Lookup(*presetName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", *presetName)
			os.Exit(1)
		}
		tmpl = p.Template
	}

	if tmpl == "" {
		fmt.Fprintln(os.Stderr, "Usage: packer -t <template> -v <values>")
		fmt.Fprintln(os.Stderr, "       packer -u -t <template> -x <hex>  (or pipe raw bytes on stdin)")
		fmt.Fprintln(os.Stderr, "       packer -p <preset> [-presets file.toml]")
		fmt.Fprintln(os.Stderr, "       packer -i  (interactive mode)")
		os.Exit(1)
	}

	if *unpackMode {
		err = runUnpack(tmpl, *hexInput, *firstOnly)
	} else {
		err = runPack(tmpl, *valuesStr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPack(template, valuesStr string) error {
	values := parseValues(valuesStr)

	buf, err := pack.Pack(values, template)
	if err != nil {
		return err
	}

	fmt.Printf("Template: %s\n", template)
	fmt.Printf("Packed %d values into %d bytes\n", len(values), len(buf))
	fmt.Printf("Hex:  %s\n", hex.EncodeToString(buf))
	fmt.Printf("Raw:  %q\n", buf)
	return nil
}

func runUnpack(template, hexInput string, firstOnly bool) error {
	data, err := readInput(hexInput)
	if err != nil {
		return err
	}

	if firstOnly {
		v, err := pack.UnpackFirst(data, template)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", formatValue(v))
		return nil
	}

	values, err := pack.Unpack(data, template)
	if err != nil {
		return err
	}

	fmt.Printf("Template: %s\n", template)
	fmt.Printf("Unpacked %d values from %d bytes\n", len(values), len(data))
	for i, v := range values {
		fmt.Printf("  [%d] %s\n", i, formatValue(v))
	}
	return nil
}

// readInput decodes the -x hex argument, or falls back to raw stdin when
// the flag is absent and stdin is not a terminal.
func readInput(hexInput string) ([]byte, error) {
	if hexInput != "" {
		data, err := hex.DecodeString(strings.Map(dropSpace, hexInput))
		if err != nil {
			return nil, fmt.Errorf("decode hex input: %w", err)
		}
		return data, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no input: pass -x <hex> or pipe raw bytes on stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func dropSpace(r rune) rune {
	switch r {
	case ' ', '\t', '\n', '\r':
		return -1
	}
	return r
}

// parseValues splits the comma-separated -v argument into typed values.
// Quoted fields stay strings; everything else tries integer then float and
// falls back to a string.
func parseValues(s string) []any {
	if s == "" {
		return nil
	}
	fields := splitValues(s)
	values := make([]any, len(fields))
	for i, f := range fields {
		values[i] = parseValue(f)
	}
	return values
}

// splitValues splits on commas outside double quotes.
func splitValues(s string) []string {
	var fields []string
	var b strings.Builder
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			quoted = !quoted
			b.WriteByte(c)
		case c == ',' && !quoted:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	fields = append(fields, b.String())
	return fields
}

func parseValue(s string) any {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return n
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		if pack.IsNoValue(v) {
			return "nil"
		}
		return fmt.Sprintf("%v", v)
	}
}
