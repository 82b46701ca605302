// This file is part of Oledout.
//
// Oledout is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Oledout is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Oledout.  If not, see <https://www.gnu.org/licenses/>.

package wavbuzzer

import (
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/logger"
)

// SampleRate of the recording.
const SampleRate = 22050

// Amplitude of the square wave as a 16 bit sample.
const Amplitude = 8192

const bitDepth = 16

// Buzzer implements the hardware.ToneGenerator interface.
type Buzzer struct {
	filename string
	clock    hardware.Clock

	// the time of the first sample
	start time.Time

	buffer []int

	// the tone being sounded. a frequency of zero means silence
	frequency int
	until     time.Time

	// the tone sounds until Stop() or the next Tone()
	held bool
}

// New is the preferred method of initialisation for the Buzzer type. The
// recording starts at the current time of the clock.
func New(filename string, clock hardware.Clock) (*Buzzer, error) {
	if filename == "" {
		return nil, curated.Errorf("wavbuzzer: %v", "no filename")
	}

	bz := &Buzzer{
		filename: filename,
		clock:    clock,
		start:    clock.Now(),
		buffer:   make([]int, 0, SampleRate),
	}

	return bz, nil
}

// the index of the sample at time t
func (bz *Buzzer) index(t time.Time) int {
	d := t.Sub(bz.start)
	if d < 0 {
		return 0
	}
	return int(int64(d) * SampleRate / int64(time.Second))
}

// fill the buffer up to time t with the tone being sounded
func (bz *Buzzer) render(t time.Time) {
	end := bz.index(t)
	stop := bz.index(bz.until)

	for n := len(bz.buffer); n < end; n++ {
		if bz.frequency == 0 || (!bz.held && n >= stop) {
			bz.buffer = append(bz.buffer, 0)
			continue
		}

		// two half cycles of the square wave per period
		if (n*bz.frequency*2/SampleRate)%2 == 0 {
			bz.buffer = append(bz.buffer, Amplitude)
		} else {
			bz.buffer = append(bz.buffer, -Amplitude)
		}
	}
}

// Tone implements the hardware.ToneGenerator interface.
func (bz *Buzzer) Tone(frequency int, duration time.Duration) {
	now := bz.clock.Now()
	bz.render(now)
	bz.frequency = frequency
	bz.until = now.Add(duration)
	bz.held = duration == 0
}

// Stop implements the hardware.ToneGenerator interface.
func (bz *Buzzer) Stop() {
	bz.render(bz.clock.Now())
	bz.frequency = 0
}

// Samples returns the number of samples recorded so far.
func (bz *Buzzer) Samples() int {
	bz.render(bz.clock.Now())
	return len(bz.buffer)
}

// Close writes the recording to disk.
func (bz *Buzzer) Close() (rerr error) {
	bz.render(bz.clock.Now())

	f, err := os.Create(bz.filename)
	if err != nil {
		return curated.Errorf("wavbuzzer: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavbuzzer: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           bz.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wav", "writing %d samples to %s", len(bz.buffer), bz.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavbuzzer: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavbuzzer: %v", err)
	}

	return nil
}
