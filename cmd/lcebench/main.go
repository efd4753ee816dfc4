// Command lcebench benchmarks and interactively exercises the
// lce-sss index types over synthetic or file-backed text.
package main

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/herlez/lce-sss"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 && args[0] == "query" {
		return runQuery(args[1:])
	}

	return runBench(args)
}

func runBench(args []string) error {
	fs := flag.NewFlagSet("lcebench", flag.ContinueOnError)

	configPath := fs.String("config", "", "Optional HuJSON config file")
	mode := fs.String("mode", "", "Text generation mode: random|runs|fibonacci")
	path := fs.String("path", "", "Path to a text file to benchmark over instead of generating one")
	prefixLen := fs.Int("prefix-len", 0, "Length of generated text in bytes")
	tau := fs.Int("tau", 0, "SSS window length")
	parallelism := fs.Int("parallelism", 0, "Build parallelism (0 = GOMAXPROCS)")
	seed := fs.Uint64("seed", 0, "Deterministic seed for text generation and the SSS build")
	queries := fs.Int("queries", 0, "Number of random LCE queries to time")
	out := fs.String("out", "", "File to append the RESULT line to (stdout if empty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfigFile(*configPath)
	if err != nil {
		return err
	}

	mergeConfig(&cfg, Config{
		Mode:        *mode,
		Path:        *path,
		PrefixLen:   *prefixLen,
		Tau:         *tau,
		Parallelism: *parallelism,
		Seed:        *seed,
		Queries:     *queries,
		Out:         *out,
	})

	text, err := loadOrGenerateText(cfg)
	if err != nil {
		return err
	}

	buildStart := time.Now()

	idx, err := lce.BuildSSSIndex(text, lce.Options{
		Tau:         cfg.Tau,
		Parallelism: cfg.Parallelism,
		Seed:        cfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("lcebench: build sss index: %w", err)
	}

	buildElapsed := time.Since(buildStart)

	queryElapsed, err := timeRandomQueries(idx, cfg.Queries, cfg.Seed)
	if err != nil {
		return err
	}

	line := fmt.Sprintf(
		"RESULT mode=%s text_len=%d tau=%d queries=%d build_ms=%.3f query_ns_per_op=%.1f\n",
		cfg.Mode, len(text), cfg.Tau, cfg.Queries,
		float64(buildElapsed.Microseconds())/1000,
		float64(queryElapsed.Nanoseconds())/float64(max(cfg.Queries, 1)),
	)

	return writeResult(cfg.Out, line)
}

func loadOrGenerateText(cfg Config) ([]byte, error) {
	if cfg.Path != "" {
		return os.ReadFile(cfg.Path) //nolint:gosec // operator-supplied benchmark input
	}

	return generateText(cfg.Mode, cfg.PrefixLen, cfg.Seed)
}

func timeRandomQueries(idx *lce.SSSIndex, queries int, seed uint64) (time.Duration, error) {
	n := idx.SizeBytes()
	if n == 0 || queries <= 0 {
		return 0, nil
	}

	rng := rand.New(rand.NewPCG(seed^1, seed^2))

	pairs := make([][2]uint64, queries)
	for k := range pairs {
		pairs[k] = [2]uint64{uint64(rng.IntN(int(n))), uint64(rng.IntN(int(n)))}
	}

	start := time.Now()

	for _, p := range pairs {
		if _, err := idx.LCE(p[0], p[1]); err != nil {
			return 0, fmt.Errorf("lcebench: query benchmark: %w", err)
		}
	}

	return time.Since(start), nil
}

func writeResult(path, line string) error {
	if path == "" {
		_, err := fmt.Print(line)
		return err
	}

	var buf bytes.Buffer

	if existing, err := os.ReadFile(path); err == nil {
		buf.Write(existing)
	}

	buf.WriteString(line)

	return atomicWriteFile(path, buf.Bytes())
}
