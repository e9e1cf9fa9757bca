package appplatform

import (
	"encoding/binary"
	"io"
)

// Wire format for the remote endpoint manager.
//
// Every message carries a 4-byte big-endian length prefix. A read request
// payload is the three path identifiers as big-endian signed 32-bit
// values, endpoint first. A read response payload is one status byte
// followed by the textual value, copied verbatim.

const (
	lengthPrefixSize = 4
	readRequestSize  = 12

	// MaxValueSize bounds the textual value accepted from the host.
	MaxValueSize = 64 * 1024
)

// Response status codes.
const (
	statusOK     = 0x00
	statusFailed = 0x01
)

// readRequest is the wire form of a host attribute read.
type readRequest struct {
	Endpoint  int32
	Cluster   int32
	Attribute int32
}

func (r readRequest) encode() []byte {
	buf := make([]byte, readRequestSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(r.Endpoint))
	binary.BigEndian.PutUint32(buf[4:8], uint32(r.Cluster))
	binary.BigEndian.PutUint32(buf[8:12], uint32(r.Attribute))
	return buf
}

func decodeReadRequest(payload []byte) (readRequest, error) {
	if len(payload) != readRequestSize {
		return readRequest{}, ErrShortFrame
	}
	return readRequest{
		Endpoint:  int32(binary.BigEndian.Uint32(payload[0:4])),
		Cluster:   int32(binary.BigEndian.Uint32(payload[4:8])),
		Attribute: int32(binary.BigEndian.Uint32(payload[8:12])),
	}, nil
}

func encodeReadResponse(status byte, value []byte) []byte {
	buf := make([]byte, 1+len(value))
	buf[0] = status
	copy(buf[1:], value)
	return buf
}

// decodeReadResponse returns the textual value, or ErrHostFailure if the
// host reported a failed read.
func decodeReadResponse(payload []byte) (string, error) {
	if len(payload) < 1 {
		return "", ErrShortFrame
	}
	switch payload[0] {
	case statusOK:
		return string(payload[1:]), nil
	case statusFailed:
		return "", ErrHostFailure
	default:
		return "", ErrInvalidStatus
	}
}

// writeFrame writes a message with a 4-byte big-endian length prefix.
func writeFrame(w io.Writer, payload []byte) error {
	var lenBuf [lengthPrefixSize]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))

	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// readFrame reads a length-prefixed message from the stream.
func readFrame(r io.Reader) ([]byte, error) {
	var lenBuf [lengthPrefixSize]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}

	frameLen := binary.BigEndian.Uint32(lenBuf[:])
	if frameLen == 0 {
		return nil, ErrShortFrame
	}
	if frameLen > MaxValueSize+1 {
		return nil, ErrFrameTooLarge
	}

	payload := make([]byte, frameLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
