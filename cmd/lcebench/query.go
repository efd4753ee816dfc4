package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/herlez/lce-sss"
)

// runQuery loads a text file, builds an SSS index over it, and drops
// into an interactive REPL for ad hoc lce/byte/smaller queries.
//
// Commands:
//
//	lce <i> <j>       print the longest common extension of i and j
//	byte <i>          print the byte at position i
//	smaller <i> <j>   print whether suffix i is smaller than suffix j
//	help              show this help
//	exit / quit       leave the REPL
func runQuery(args []string) error {
	fs := flag.NewFlagSet("lcebench query", flag.ContinueOnError)
	tau := fs.Int("tau", 32, "SSS window length")
	parallelism := fs.Int("parallelism", 0, "Build parallelism (0 = GOMAXPROCS)")
	seed := fs.Uint64("seed", 1, "Deterministic seed for the SSS build")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("lcebench query: usage: lcebench query [flags] <path>")
	}

	text, err := os.ReadFile(fs.Arg(0)) //nolint:gosec // operator-supplied path
	if err != nil {
		return fmt.Errorf("lcebench query: %w", err)
	}

	idx, err := lce.BuildSSSIndex(text, lce.Options{Tau: *tau, Parallelism: *parallelism, Seed: *seed})
	if err != nil {
		return fmt.Errorf("lcebench query: build sss index: %w", err)
	}

	repl := &queryREPL{idx: idx}

	return repl.run()
}

type queryREPL struct {
	idx *lce.SSSIndex
}

func (r *queryREPL) run() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("lce> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}

			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if input == "exit" || input == "quit" {
			return nil
		}

		if err := r.dispatch(input); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func (r *queryREPL) dispatch(input string) error {
	fields := strings.Fields(input)

	switch fields[0] {
	case "help":
		fmt.Println("commands: lce <i> <j> | byte <i> | smaller <i> <j> | exit")
		return nil
	case "lce":
		return r.cmdLCE(fields)
	case "byte":
		return r.cmdByte(fields)
	case "smaller":
		return r.cmdSmaller(fields)
	default:
		return fmt.Errorf("unknown command %q (try 'help')", fields[0])
	}
}

func (r *queryREPL) cmdLCE(fields []string) error {
	i, j, err := parseTwoIndices(fields)
	if err != nil {
		return err
	}

	l, err := r.idx.LCE(i, j)
	if err != nil {
		return err
	}

	fmt.Printf("%d\n", l)

	return nil
}

func (r *queryREPL) cmdByte(fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("usage: byte <i>")
	}

	i, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", fields[1], err)
	}

	b, err := r.idx.Byte(i)
	if err != nil {
		return err
	}

	fmt.Printf("%d (%q)\n", b, string(b))

	return nil
}

func (r *queryREPL) cmdSmaller(fields []string) error {
	i, j, err := parseTwoIndices(fields)
	if err != nil {
		return err
	}

	smaller, err := r.idx.IsSmallerSuffix(i, j)
	if err != nil {
		return err
	}

	fmt.Printf("%t\n", smaller)

	return nil
}

func parseTwoIndices(fields []string) (uint64, uint64, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("usage: %s <i> <j>", fields[0])
	}

	i, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid index %q: %w", fields[1], err)
	}

	j, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid index %q: %w", fields[2], err)
	}

	return i, j, nil
}
