// Package compression provides the buffer compressors used for stored
// attachments.
package compression

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zlib"
)

// HeaderSize is the length of the size prefix carried by compressed buffers.
const HeaderSize = 8

// Compressor compresses and uncompresses whole buffers.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Uncompress(data []byte) ([]byte, error)

	// UncompressedSize reports the size recorded in the first HeaderSize
	// bytes of a compressed buffer, without inflating it.
	UncompressedSize(header []byte) (int64, error)
}

// ZlibCompressor is a zlib Compressor whose output carries the uncompressed
// size as an 8-byte little-endian prefix, so buffers can be sized before
// inflation.
type ZlibCompressor struct {
	// Level is the zlib compression level; 0 selects the default.
	Level int
}

// Compress deflates data. Empty input yields an empty (prefix-only) buffer.
func (c *ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint64(len(data))); err != nil {
		return nil, err
	}

	level := c.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}

	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("create zlib writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	return buf.Bytes(), nil
}

// Uncompress inflates a buffer produced by Compress and checks the result
// against the recorded size.
func (c *ZlibCompressor) Uncompress(data []byte) ([]byte, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("compressed buffer too short: %d bytes", len(data))
	}

	size := binary.LittleEndian.Uint64(data[:HeaderSize])
	compressed := data[HeaderSize:]

	// A deflate stream cannot expand by more than a factor of 1032, so a
	// larger prefix is corrupt. Checking first keeps the preallocation
	// below bounded by the input length.
	if size > uint64(len(compressed))*1032 {
		return nil, fmt.Errorf("implausible uncompressed size %d for %d compressed bytes", size, len(compressed))
	}

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("open zlib stream: %w", err)
	}
	defer r.Close()

	out := make([]byte, 0, size)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("uncompress: %w", err)
	}

	if uint64(buf.Len()) != size {
		return nil, fmt.Errorf("uncompressed size mismatch: recorded %d, got %d", size, buf.Len())
	}

	return buf.Bytes(), nil
}

// UncompressedSize reads the size prefix of a buffer produced by Compress.
// Only the first HeaderSize bytes are consulted.
func (c *ZlibCompressor) UncompressedSize(header []byte) (int64, error) {
	if len(header) < HeaderSize {
		return 0, fmt.Errorf("compressed buffer too short: %d bytes", len(header))
	}

	size := binary.LittleEndian.Uint64(header[:HeaderSize])
	if size > math.MaxInt64 {
		return 0, fmt.Errorf("implausible uncompressed size %d", size)
	}
	return int64(size), nil
}
