// SPDX-License-Identifier: EPL-2.0

// Command lofipcm compresses an audio file into a .bin container or restores
// a container to a WAV file.
//
//	lofipcm -mode compress -in speech.wav
//	lofipcm -mode restore -in compressed.bin
//	lofipcm -mode compress -out-dir out -jobs 4 a.wav b.mp3 c.ogg
//
// Missing -mode or -in are asked for interactively.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ik5/lofipcm"
	"github.com/ik5/lofipcm/codec"
	"github.com/ik5/lofipcm/internal/logging"
	"github.com/ik5/lofipcm/internal/prompt"
)

const (
	compressedName = "compressed.bin"
	restoredName   = "restored.wav"
)

type options struct {
	mode     string
	in       string
	config   string
	logLevel string
	outDir   string
	jobs     int
	batch    []string
}

// asker fills in a missing mode or input path.
type asker func(mode, path string) (prompt.Answers, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ask := func(mode, path string) (prompt.Answers, error) {
		return prompt.Run(os.Stdin, os.Stdout, mode, path)
	}
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, ask)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, ask asker) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printErr(stderr, err)
		return 1
	}

	if err := execute(ctx, opts, stdout, ask); err != nil {
		printErr(stderr, err)
		return 1
	}
	return 0
}

// printErr writes err as a single line; joined errors are separated by "; ".
func printErr(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", strings.ReplaceAll(err.Error(), "\n", "; "))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("lofipcm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.mode, "mode", "", "compress or restore")
	fs.StringVar(&opts.in, "in", "", "input file (audio for compress, .bin for restore)")
	fs.StringVar(&opts.config, "config", "", "optional YAML codec configuration")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "disabled, error, warn, info, debug or trace")
	fs.StringVar(&opts.outDir, "out-dir", ".", "directory for output files")
	fs.IntVar(&opts.jobs, "jobs", 0, "parallel files in batch mode (0 = GOMAXPROCS)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.batch = fs.Args()

	switch opts.mode {
	case "", prompt.ModeCompress, prompt.ModeRestore:
	default:
		return opts, fmt.Errorf("unknown mode %q (want %s or %s)", opts.mode, prompt.ModeCompress, prompt.ModeRestore)
	}
	if len(opts.batch) > 0 && opts.mode == prompt.ModeRestore {
		return opts, fmt.Errorf("positional files are only accepted in %s mode", prompt.ModeCompress)
	}
	return opts, nil
}

func execute(ctx context.Context, opts options, stdout io.Writer, ask asker) error {
	lvl, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(lvl)

	cfg := codec.DefaultConfig()
	if opts.config != "" {
		if cfg, err = codec.LoadConfig(opts.config); err != nil {
			return err
		}
	}

	if len(opts.batch) > 0 {
		inputs := opts.batch
		if opts.in != "" {
			inputs = append([]string{opts.in}, inputs...)
		}
		outputs, err := lofipcm.CompressBatch(ctx, inputs, opts.outDir, cfg, opts.jobs)
		if err != nil {
			return err
		}
		for _, out := range outputs {
			fmt.Fprintln(stdout, "Wrote:", out)
		}
		return nil
	}

	if opts.mode == "" || opts.in == "" {
		answers, err := ask(opts.mode, opts.in)
		if err != nil {
			return err
		}
		opts.mode, opts.in = answers.Mode, answers.Path
	}

	switch opts.mode {
	case prompt.ModeCompress:
		out := filepath.Join(opts.outDir, compressedName)
		rec, err := lofipcm.CompressFile(opts.in, out, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote: %s (%d samples, %d Hz, %d-bit)\n",
			out, len(rec.Samples), rec.SampleRate, rec.BitDepth)
	case prompt.ModeRestore:
		out := filepath.Join(opts.outDir, restoredName)
		n, rate, err := lofipcm.RestoreFile(opts.in, out, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote: %s (%d samples, %d Hz)\n", out, n, rate)
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
	return nil
}
