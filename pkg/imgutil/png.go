package imgutil

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

// Dimensions holds the pixel size recorded in a PNG IHDR chunk.
type Dimensions struct {
	Width  int
	Height int
}

// ReadDimensions parses the IHDR chunk, which the PNG spec requires to be
// the first chunk in the stream. The reader is rewound before parsing.
func ReadDimensions(rs io.ReadSeeker) (Dimensions, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return Dimensions{}, err
	}

	br := bufio.NewReader(rs)

	sig := make([]byte, 8)
	if _, err := io.ReadFull(br, sig); err != nil {
		return Dimensions{}, err
	}
	if !hasPrefix(sig, pngSig) {
		return Dimensions{}, errors.New("invalid PNG signature")
	}

	header := make([]byte, 8)
	if _, err := io.ReadFull(br, header); err != nil {
		return Dimensions{}, err
	}
	length := binary.BigEndian.Uint32(header[:4])
	if string(header[4:]) != "IHDR" || length < 13 {
		return Dimensions{}, errors.New("missing IHDR chunk")
	}

	dims := make([]byte, 8)
	if _, err := io.ReadFull(br, dims); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		Width:  int(binary.BigEndian.Uint32(dims[:4])),
		Height: int(binary.BigEndian.Uint32(dims[4:])),
	}, nil
}

// ExifChunk returns the payload of the first eXIf chunk (a raw TIFF
// structure per the PNG extension spec), or nil when the file carries none.
func ExifChunk(rs io.ReadSeeker) ([]byte, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	br := bufio.NewReader(rs)

	sig := make([]byte, 8)
	if _, err := io.ReadFull(br, sig); err != nil {
		return nil, err
	}
	if !hasPrefix(sig, pngSig) {
		return nil, errors.New("invalid PNG signature")
	}

	for {
		lenBuf := make([]byte, 4)
		if _, err := io.ReadFull(br, lenBuf); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
		length := binary.BigEndian.Uint32(lenBuf)

		typeBuf := make([]byte, 4)
		if _, err := io.ReadFull(br, typeBuf); err != nil {
			return nil, err
		}
		chunkName := string(typeBuf)

		if chunkName == "eXIf" {
			data := make([]byte, length)
			if _, err := io.ReadFull(br, data); err != nil {
				return nil, err
			}
			return data, nil
		}

		if _, err := io.CopyN(io.Discard, br, int64(length)+4); err != nil {
			return nil, err
		}
		if chunkName == "IEND" {
			return nil, nil
		}
	}
}
