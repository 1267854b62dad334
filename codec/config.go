// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/lofipcm/codecerr"
	"github.com/ik5/lofipcm/dsp"
)

// Config holds the codec parameters. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	TargetRMS          float64            `yaml:"target_rms"`
	SilenceThreshold   float64            `yaml:"silence_threshold"`
	MaxGain            float64            `yaml:"max_gain"`
	EmphasisCoeff      float64            `yaml:"emphasis_coeff"`
	TransientThreshold float64            `yaml:"transient_threshold"`
	DownsampleFactor   int                `yaml:"downsample_factor"`
	BitDepth           int                `yaml:"bit_depth"`
	MirrorGain         float64            `yaml:"mirror_gain"`
	Dequantize         dsp.DequantizeMode `yaml:"dequantize"`
	// InputRate resamples CompressSource input first; 0 keeps the source rate.
	InputRate int `yaml:"input_rate"`
}

func DefaultConfig() Config {
	return Config{
		TargetRMS:          dsp.DefaultTargetRMS,
		SilenceThreshold:   dsp.DefaultSilenceThreshold,
		MaxGain:            dsp.DefaultMaxGain,
		EmphasisCoeff:      dsp.DefaultEmphasisCoeff,
		TransientThreshold: dsp.DefaultTransientThreshold,
		DownsampleFactor:   2,
		BitDepth:           dsp.DefaultBitDepth,
		MirrorGain:         dsp.DefaultMirrorGain,
		Dequantize:         dsp.DequantizeRaw,
	}
}

func (c Config) normalizeParams() dsp.NormalizeParams {
	return dsp.NormalizeParams{
		TargetRMS:        c.TargetRMS,
		SilenceThreshold: c.SilenceThreshold,
		MaxGain:          c.MaxGain,
	}
}

// Validate returns every problem with c joined together, each wrapping
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(msg string) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, msg))
	}

	if !(c.TargetRMS > 0) {
		bad(fmt.Sprintf("target_rms %v must be positive", c.TargetRMS))
	}
	if !(c.SilenceThreshold >= 0) {
		bad(fmt.Sprintf("silence_threshold %v must not be negative", c.SilenceThreshold))
	}
	if !(c.MaxGain > 0) {
		bad(fmt.Sprintf("max_gain %v must be positive", c.MaxGain))
	}
	if !(c.EmphasisCoeff >= 0 && c.EmphasisCoeff < 1) {
		bad(fmt.Sprintf("emphasis_coeff %v is out of range [0, 1)", c.EmphasisCoeff))
	}
	if !(c.TransientThreshold >= 0) {
		bad(fmt.Sprintf("transient_threshold %v must not be negative", c.TransientThreshold))
	}
	if c.DownsampleFactor < 1 || c.DownsampleFactor > dsp.MaxFactor {
		bad(fmt.Sprintf("downsample_factor %d is out of range [1, %d]", c.DownsampleFactor, dsp.MaxFactor))
	}
	if c.BitDepth < 1 || c.BitDepth > 32 {
		bad(fmt.Sprintf("bit_depth %d is out of range [1, 32]", c.BitDepth))
	}
	if !(c.MirrorGain >= 0) {
		bad(fmt.Sprintf("mirror_gain %v must not be negative", c.MirrorGain))
	}
	if !c.Dequantize.Valid() {
		bad(fmt.Sprintf("dequantize %q is invalid; valid values: %s, %s", c.Dequantize, dsp.DequantizeRaw, dsp.DequantizeUnit))
	}
	if c.InputRate < 0 {
		bad(fmt.Sprintf("input_rate %d must not be negative", c.InputRate))
	}

	return errors.Join(errs...)
}

// LoadConfig reads a YAML config from path. Keys that are absent keep their
// DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &codecerr.ResourceError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	cfg, err := LoadConfigFromReader(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromReader decodes YAML from r over DefaultConfig and validates
// the result. Unknown keys are rejected. An empty document yields the
// defaults.
func LoadConfigFromReader(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: decode yaml: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
