// SPDX-License-Identifier: EPL-2.0

package container

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/lofipcm/codec"
	"github.com/ik5/lofipcm/codecerr"
)

// HeaderSize is the fixed number of bytes before the first sample.
const HeaderSize = 12

// Marshal encodes rec. The record must validate and every sample must fit
// in int8.
func Marshal(rec *codec.Record) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, HeaderSize+len(rec.Samples))
	binary.LittleEndian.PutUint32(buf[0:4], rec.SampleRate)
	binary.LittleEndian.PutUint32(buf[4:8], rec.BitDepth)
	binary.LittleEndian.PutUint32(buf[8:12], rec.DownsampleFactor)

	for i, s := range rec.Samples {
		if s < math.MinInt8 || s > math.MaxInt8 {
			return nil, fmt.Errorf("%w: sample %d = %d", ErrSampleOutOfRange, i, s)
		}
		buf[HeaderSize+i] = byte(int8(s))
	}
	return buf, nil
}

// Unmarshal decodes data produced by Marshal. The decoded record must pass
// codec.Record.Validate; any failure is reported as ErrInvalidHeader.
func Unmarshal(data []byte) (*codec.Record, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d of %d bytes", ErrTruncatedHeader, len(data), HeaderSize)
	}

	rec := &codec.Record{
		SampleRate:       binary.LittleEndian.Uint32(data[0:4]),
		BitDepth:         binary.LittleEndian.Uint32(data[4:8]),
		DownsampleFactor: binary.LittleEndian.Uint32(data[8:12]),
	}
	payload := data[HeaderSize:]
	rec.Samples = make([]int32, len(payload))
	for i, b := range payload {
		rec.Samples[i] = int32(int8(b))
	}

	// %v keeps the result a format error only
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	return rec, nil
}

// Write marshals rec to w.
func Write(w io.Writer, rec *codec.Record) error {
	data, err := Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write container: %w", err)
	}
	return nil
}

// Read consumes r to the end and unmarshals it.
func Read(r io.Reader) (*codec.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read container: %w", err)
	}
	return Unmarshal(data)
}

// WriteFile creates or truncates path and writes rec to it. Nothing is
// created when rec does not marshal.
func WriteFile(path string, rec *codec.Record) (err error) {
	data, err := Marshal(rec)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &codecerr.ResourceError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &codecerr.ResourceError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if _, err := f.Write(data); err != nil {
		return &codecerr.ResourceError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// ReadFile reads and unmarshals the container at path.
func ReadFile(path string) (*codec.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &codecerr.ResourceError{Op: "read", Path: path, Err: err}
	}

	rec, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}
