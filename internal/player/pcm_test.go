package player

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func pcmBytes(samples ...int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	return buf
}

func TestPCMVolumeHalves(t *testing.T) {
	v := NewPCMVolume(bytes.NewReader(pcmBytes(1000, -1000, 0)))
	v.SetVolume(0.5)

	out, err := io.ReadAll(v)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	want := pcmBytes(500, -500, 0)
	if !bytes.Equal(out, want) {
		t.Errorf("expected %v, got %v", want, out)
	}
}

func TestPCMVolumeUnityPassthrough(t *testing.T) {
	in := pcmBytes(12345, -32768, 32767)
	v := NewPCMVolume(bytes.NewReader(in))

	out, err := io.ReadAll(v)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("unity volume must not alter samples")
	}
}

func TestPCMVolumeClamps(t *testing.T) {
	v := NewPCMVolume(bytes.NewReader(pcmBytes(30000, -30000)))
	v.SetVolume(2.0) // boost past the int16 range

	out, err := io.ReadAll(v)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	want := pcmBytes(32767, -32768)
	if !bytes.Equal(out, want) {
		t.Errorf("expected %v, got %v", want, out)
	}
}

func TestPCMVolumeOddByteCarry(t *testing.T) {
	// A reader delivering an odd byte count must not corrupt sample
	// alignment; the trailing byte is carried into the next read.
	src := pcmBytes(1000, 2000)
	v := NewPCMVolume(chunkReader{r: bytes.NewReader(src), chunk: 3})
	v.SetVolume(0.5)

	var out []byte
	buf := make([]byte, 3)
	for {
		n, err := v.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
	}
	want := pcmBytes(500, 1000)
	if !bytes.Equal(out, want) {
		t.Errorf("expected %v, got %v", want, out)
	}
}

// chunkReader limits each Read to chunk bytes to exercise partial reads.
type chunkReader struct {
	r     io.Reader
	chunk int
}

func (i chunkReader) Read(p []byte) (int, error) {
	if len(p) > i.chunk {
		p = p[:i.chunk]
	}
	return i.r.Read(p)
}
