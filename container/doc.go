// SPDX-License-Identifier: EPL-2.0

// Package container serializes codec records to the .bin layout:
//
//	offset 0   uint32 LE  sample rate
//	offset 4   uint32 LE  bit depth
//	offset 8   uint32 LE  downsample factor
//	offset 12  int8       one per sample, until end of data
//
// There is no magic number, version or length field; the sample count is
// implied by the data size. Every sample must therefore fit in int8, which
// holds for the default 8-bit depth.
package container
