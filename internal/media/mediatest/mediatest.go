// Package mediatest builds minimal valid MP4 payloads for tests.
package mediatest

import (
	"bytes"
	"encoding/binary"
)

// MinimalMP4 returns the smallest container the prober accepts: an
// ftyp box followed by a moov box holding a version-0 mvhd with the
// given timescale and duration.
func MinimalMP4(timescale, duration uint32) []byte {
	var buf bytes.Buffer

	// ftyp: major brand isom, minor version 0x200, one compatible brand
	writeBox(&buf, "ftyp", []byte("isom\x00\x00\x02\x00isom"))

	mvhd := make([]byte, 100)
	// version (0) and flags already zero
	binary.BigEndian.PutUint32(mvhd[12:], timescale)
	binary.BigEndian.PutUint32(mvhd[16:], duration)
	binary.BigEndian.PutUint32(mvhd[20:], 0x00010000) // rate 1.0
	binary.BigEndian.PutUint16(mvhd[24:], 0x0100)     // volume 1.0
	// unity matrix
	binary.BigEndian.PutUint32(mvhd[36:], 0x00010000)
	binary.BigEndian.PutUint32(mvhd[52:], 0x00010000)
	binary.BigEndian.PutUint32(mvhd[68:], 0x40000000)
	binary.BigEndian.PutUint32(mvhd[96:], 1) // next track id

	var moov bytes.Buffer
	writeBox(&moov, "mvhd", mvhd)
	writeBox(&buf, "moov", moov.Bytes())

	return buf.Bytes()
}

func writeBox(buf *bytes.Buffer, boxType string, payload []byte) {
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(8+len(payload)))
	buf.Write(size[:])
	buf.WriteString(boxType)
	buf.Write(payload)
}
