package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/binpack/packer"
	"github.com/wippyai/binpack/schema"
	"github.com/wippyai/binpack/value"
)

const usage = `Usage: binpack pack -t TEMPLATE [-raw] values...
       binpack pack -layouts FILE -layout NAME field=value...
       binpack unpack -t TEMPLATE [-x HEX] [-1]     (reads stdin without -x)
       binpack unpack -layouts FILE -layout NAME [-x HEX]
       binpack describe -t TEMPLATE | -layouts FILE [-layout NAME]
       binpack [-i]                                 (interactive mode)

Common flags: -endian host|little|big, -v (debug logging)
Values: integers (42, 0x2a), floats (1.5), nil, "quoted" or bare strings,
[a,b,c] for list fields of a layout. Put -- before values that start with "-".`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	template    string
	layoutsFile string
	layout      string
	endian      string
	hexInput    string
	raw         bool
	single      bool
	verbose     bool
	interactive bool
}

func newFlagSet(name string, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.template, "t", "", "Template string")
	fs.StringVar(&opts.layoutsFile, "layouts", "", "YAML layouts file")
	fs.StringVar(&opts.layout, "layout", "", "Layout name within the layouts file")
	fs.StringVar(&opts.endian, "endian", "host", "Native byte order: host, little or big")
	fs.StringVar(&opts.hexInput, "x", "", "Hex encoded input data for unpack")
	fs.BoolVar(&opts.raw, "raw", false, "Write packed bytes instead of hex")
	fs.BoolVar(&opts.single, "1", false, "Unpack only the first value")
	fs.BoolVar(&opts.verbose, "v", false, "Debug logging")
	fs.BoolVar(&opts.interactive, "i", false, "Interactive mode with TUI")
	return fs
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := ""
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	var opts options
	fs := newFlagSet(cmd, &opts)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n\n%s", err, usage)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	packer.SetLogger(logger.Named("packer"))
	schema.SetLogger(logger.Named("schema"))

	endian, err := packer.ParseEndian(opts.endian)
	if err != nil {
		return err
	}
	codec, err := packer.NewCodecWithConfig(&packer.Config{Endian: endian})
	if err != nil {
		return err
	}

	switch cmd {
	case "pack":
		return runPack(codec, &opts, fs.Args(), stdout)
	case "unpack":
		return runUnpack(codec, &opts, stdin, stdout)
	case "describe":
		return runDescribe(codec, &opts, stdout)
	case "":
		if opts.interactive || isTerminal(stdin) {
			return runInteractive(codec)
		}
		return fmt.Errorf("no command given\n\n%s", usage)
	default:
		return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func loadLayout(codec *packer.Codec, opts *options) (*schema.Layout, error) {
	reg, err := schema.LoadLayouts(opts.layoutsFile, codec)
	if err != nil {
		return nil, err
	}
	l, ok := reg.Get(opts.layout)
	if !ok {
		return nil, fmt.Errorf("layout %q not found (have %s)", opts.layout, strings.Join(reg.Names(), ", "))
	}
	return l, nil
}

func runPack(codec *packer.Codec, opts *options, args []string, stdout io.Writer) error {
	var (
		out []byte
		err error
	)
	switch {
	case opts.layoutsFile != "":
		l, lerr := loadLayout(codec, opts)
		if lerr != nil {
			return lerr
		}
		record, rerr := parseRecord(args)
		if rerr != nil {
			return rerr
		}
		out, err = l.Pack(record)
	case opts.template != "":
		vals, verr := parseValues(args)
		if verr != nil {
			return verr
		}
		out, err = codec.Pack(opts.template, vals...)
	default:
		return fmt.Errorf("pack needs -t or -layouts\n\n%s", usage)
	}
	if err != nil {
		return err
	}

	if opts.raw {
		_, err = stdout.Write(out)
		return err
	}
	_, err = fmt.Fprintln(stdout, hex.EncodeToString(out))
	return err
}

func runUnpack(codec *packer.Codec, opts *options, stdin io.Reader, stdout io.Writer) error {
	data, err := readInput(opts, stdin)
	if err != nil {
		return err
	}

	switch {
	case opts.layoutsFile != "":
		l, err := loadLayout(codec, opts)
		if err != nil {
			return err
		}
		record, err := l.Unpack(data)
		if err != nil {
			return err
		}
		for _, name := range l.Fields {
			fmt.Fprintf(stdout, "%s: %s\n", name, formatAny(record[name]))
		}
		return nil

	case opts.template != "":
		if opts.single {
			v, err := codec.Unpack1(opts.template, data)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, v)
			return nil
		}
		vals, err := codec.Unpack(opts.template, data)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, formatValues(vals))
		return nil

	default:
		return fmt.Errorf("unpack needs -t or -layouts\n\n%s", usage)
	}
}

func readInput(opts *options, stdin io.Reader) ([]byte, error) {
	if opts.hexInput != "" {
		data, err := hex.DecodeString(strings.Join(strings.Fields(opts.hexInput), ""))
		if err != nil {
			return nil, fmt.Errorf("decode -x: %w", err)
		}
		return data, nil
	}
	if isTerminal(stdin) {
		return nil, fmt.Errorf("no input: pass -x HEX or pipe data on stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func runDescribe(codec *packer.Codec, opts *options, stdout io.Writer) error {
	if opts.layoutsFile != "" {
		reg, err := schema.LoadLayouts(opts.layoutsFile, codec)
		if err != nil {
			return err
		}
		names := reg.Names()
		if opts.layout != "" {
			names = []string{opts.layout}
		}
		for _, name := range names {
			l, ok := reg.Get(name)
			if !ok {
				return fmt.Errorf("layout %q not found", name)
			}
			ty, err := l.Describe()
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s %q [%s] -> %s\n", l.Name, l.Template().Format, strings.Join(l.Fields, ", "), ty)
		}
		return nil
	}

	if opts.template == "" {
		return fmt.Errorf("describe needs -t or -layouts\n\n%s", usage)
	}
	t, err := codec.Parse(opts.template)
	if err != nil {
		return err
	}
	ty, err := schema.Describe(t)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s -> %s\n", t, schema.TypeString(ty))
	return nil
}

// parseValue reads one command line value: an integer, a float, nil,
// a quoted string, or a bare string.
func parseValue(s string) any {
	if s == "nil" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if len(s) >= 2 && s[0] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}

func parseValues(args []string) ([]value.Value, error) {
	raw := make([]any, len(args))
	for i, a := range args {
		raw[i] = parseValue(a)
	}
	return value.OfAll(raw...)
}

func parseRecord(args []string) (map[string]any, error) {
	record := make(map[string]any, len(args))
	for _, a := range args {
		name, v, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected field=value, got %q", a)
		}
		if len(v) >= 2 && v[0] == '[' && v[len(v)-1] == ']' {
			var items []any
			if inner := strings.TrimSpace(v[1 : len(v)-1]); inner != "" {
				for _, item := range strings.Split(inner, ",") {
					items = append(items, parseValue(strings.TrimSpace(item)))
				}
			}
			record[name] = items
			continue
		}
		record[name] = parseValue(v)
	}
	return record, nil
}

func formatValues(vals []value.Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatAny(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = formatAny(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(x)
	}
}
