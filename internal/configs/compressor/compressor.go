// Package compressor gzips response bodies with pooled writers.
package compressor

import (
	"bytes"
	"compress/gzip"
	"io"
	"sync"
)

// Compressor gzips byte slices. It is safe for concurrent use.
type Compressor struct {
	level int
	pool  sync.Pool
}

// New returns a Compressor using the given gzip level. An invalid level
// falls back to gzip.DefaultCompression.
func New(level int) *Compressor {
	if level < gzip.HuffmanOnly || level > gzip.BestCompression {
		level = gzip.DefaultCompression
	}
	c := &Compressor{level: level}
	c.pool.New = func() any {
		zw, _ := gzip.NewWriterLevel(io.Discard, c.level)
		return zw
	}
	return c
}

// Compress returns data gzipped at the configured level.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	zw := c.pool.Get().(*gzip.Writer)
	defer c.pool.Put(zw)

	var buf bytes.Buffer
	zw.Reset(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
