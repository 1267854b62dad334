// SPDX-License-Identifier: EPL-2.0

package lofipcm

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/lofipcm/codec"
)

// BatchOutput names the container written for input inside outDir:
// the base name with its extension replaced by ".bin".
func BatchOutput(outDir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base))+".bin")
}

// CompressBatch compresses every input into outDir with at most jobs files in
// flight (jobs <= 0 means GOMAXPROCS). The first failure cancels files that
// have not started yet and is returned. On success the output paths are
// returned in input order.
func CompressBatch(ctx context.Context, inputs []string, outDir string, cfg codec.Config, jobs int) ([]string, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	outputs := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		out := BatchOutput(outDir, in)
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%w: %s and %s -> %s", ErrDuplicateOutput, prev, in, out)
		}
		seen[out] = in
		outputs[i] = out
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := CompressFile(in, outputs[i], cfg)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Infof("compressed %d files into %s", len(inputs), outDir)

	return outputs, nil
}
