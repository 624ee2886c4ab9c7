package compress

import (
	"bytes"
	"io"

	"github.com/golang/snappy"
)

// Compressor is the codec contract used by the filter. Both directions
// take the whole packet payload and return a fresh buffer; the caller
// swaps it in as the new contents.
type Compressor interface {
	// Encode compresses b.
	Encode(b []byte) ([]byte, error)

	// Decode decompresses b. Input that is not valid for the codec
	// fails.
	Decode(b []byte) ([]byte, error)
}

// Snappy implements Compressor using the Snappy framing format, so
// payloads interoperate with other framing-format peers.
type Snappy struct{}

// Encode implements Compressor.
func (Snappy) Encode(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := snappy.NewBufferedWriter(&buf)
	if _, err := writer.Write(b); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements Compressor.
func (Snappy) Decode(b []byte) ([]byte, error) {
	return io.ReadAll(snappy.NewReader(bytes.NewReader(b)))
}
