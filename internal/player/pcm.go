package player

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
)

// PCMVolume wraps an io.Reader providing int16 little-endian PCM audio and
// scales the amplitude by a volume factor. Volume changes apply to the next
// Read, so they take effect without restarting the stream.
type PCMVolume struct {
	r        io.Reader
	volume   float64 // linear gain, 1.0 is unity
	mu       sync.Mutex
	leftover []byte // partial sample carried between reads
}

// NewPCMVolume creates a PCMVolume reader at full volume.
func NewPCMVolume(r io.Reader) *PCMVolume {
	return &PCMVolume{
		r:      r,
		volume: 1.0,
	}
}

// SetVolume sets the gain factor. Values above unity clamp at the int16
// range rather than wrapping.
func (v *PCMVolume) SetVolume(vol float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.volume = math.Max(0, vol)
}

// Read implements io.Reader. Samples span two bytes, so an odd trailing
// byte is hidden from the consumer and replayed on the next call.
func (v *PCMVolume) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	startIdx := 0
	if len(v.leftover) > 0 {
		p[0] = v.leftover[0]
		v.leftover = nil
		startIdx = 1
		n = 1
		if len(p) == 1 {
			return 1, nil
		}
	}

	readN, err := v.r.Read(p[startIdx:])
	n += readN

	if n > 0 {
		if n%2 != 0 {
			v.leftover = []byte{p[n-1]}
			n--
		}

		v.mu.Lock()
		vol := v.volume
		v.mu.Unlock()

		// Skip the scan entirely at unity gain
		if math.Abs(vol-1.0) > 0.001 {
			for i := 0; i+1 < n; i += 2 {
				sample := int16(binary.LittleEndian.Uint16(p[i : i+2]))
				scaled := float64(sample) * vol
				if scaled > 32767 {
					scaled = 32767
				} else if scaled < -32768 {
					scaled = -32768
				}
				binary.LittleEndian.PutUint16(p[i:i+2], uint16(int16(scaled)))
			}
		}
	}

	return n, err
}
