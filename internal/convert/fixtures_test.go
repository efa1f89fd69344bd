package convert

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG drops a real encoded PNG into dir, optionally splicing an
// eXIf chunk in front of IEND.
func writePNG(t *testing.T, dir, name string, w, h int, exifPayload []byte) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if exifPayload != nil {
		iend := buildChunk("IEND", nil)
		idx := bytes.Index(data, iend)
		if idx < 0 {
			t.Fatal("encoded PNG has no IEND chunk")
		}
		spliced := append([]byte{}, data[:idx]...)
		spliced = append(spliced, buildChunk("eXIf", exifPayload)...)
		spliced = append(spliced, data[idx:]...)
		data = spliced
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func buildChunk(chunkType string, payload []byte) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(payload)))
	buf.WriteString(chunkType)
	buf.Write(payload)
	crc := crc32.ChecksumIEEE(append([]byte(chunkType), payload...))
	_ = binary.Write(&buf, binary.BigEndian, crc)
	return buf.Bytes()
}

// buildOrientationTIFF builds a minimal little-endian TIFF whose IFD0
// carries only an Orientation tag.
func buildOrientationTIFF(orientation uint16) []byte {
	var buf bytes.Buffer
	buf.WriteString("II")
	_ = binary.Write(&buf, binary.LittleEndian, uint16(42))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(8))

	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(0x0112))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(3))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(orientation))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(0))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0))
	return buf.Bytes()
}
