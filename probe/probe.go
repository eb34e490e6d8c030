// This file is part of xrambus.
//
// xrambus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// xrambus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with xrambus.  If not, see <https://www.gnu.org/licenses/>.

// Package probe records the state of the bus on every cycle to a WAV file.
// The file can be opened in any audio editor or logic analyser software that
// reads WAV files, with one sample per cycle.
//
// There are six channels:
//
//	0 to 3    the value of ports A to D as sampled by the bus controller
//	4         the value driven onto the read back port. zero when tri-stated
//	5         the mask of the read back port drive
//
// Samples are 16 bit and contain the raw 8 bit value.
package probe

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/xrambus/curated"
	"github.com/jetsetilly/xrambus/hardware/ports"
	"github.com/jetsetilly/xrambus/logger"
)

// Format of the WAV file.
const (
	NumChannels = ports.NumPorts + 2
	SampleRate  = 1000000
	BitDepth    = 16
)

// the number of frames buffered before being written to the file
const chunkFrames = 4096

// pcm format in the WAV header
const pcmFormat = 1

// Probe implements the hardware.Probe interface.
type Probe struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer
	frames   int
}

// NewProbe is the preferred method of initialisation for the Probe type. The
// file is created immediately. Close() must be called to complete the file.
func NewProbe(filename string) (*Probe, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("probe: %v", err)
	}

	p := &Probe{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, SampleRate, BitDepth, NumChannels, pcmFormat),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: NumChannels,
				SampleRate:  SampleRate,
			},
			Data:           make([]int, 0, chunkFrames*NumChannels),
			SourceBitDepth: BitDepth,
		},
	}

	logger.Logf(logger.Allow, "probe", "recording to %s", filename)

	return p, nil
}

// Record implements the hardware.Probe interface.
func (p *Probe) Record(s ports.Snapshot, d ports.Drive) error {
	for id := ports.A; id <= ports.D; id++ {
		p.buf.Data = append(p.buf.Data, int(s.Value(id)))
	}
	p.buf.Data = append(p.buf.Data, int(d.Value&d.Mask), int(d.Mask))
	p.frames++

	if len(p.buf.Data) >= chunkFrames*NumChannels {
		return p.flush()
	}

	return nil
}

func (p *Probe) flush() error {
	if len(p.buf.Data) == 0 {
		return nil
	}
	if err := p.enc.Write(p.buf); err != nil {
		return curated.Errorf("probe: %v", err)
	}
	p.buf.Data = p.buf.Data[:0]
	return nil
}

// Frames returns the number of cycles recorded.
func (p *Probe) Frames() int {
	return p.frames
}

// Close writes any buffered frames and completes the WAV file.
func (p *Probe) Close() (rerr error) {
	defer func() {
		err := p.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("probe: %v", err)
		}
	}()

	if err := p.flush(); err != nil {
		return err
	}

	if err := p.enc.Close(); err != nil {
		return curated.Errorf("probe: %v", err)
	}

	logger.Logf(logger.Allow, "probe", "%d cycles written to %s", p.frames, p.filename)

	return nil
}
