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

package sdlboard

import (
	"time"

	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// sample rate of the audio device
const sampleFreq = 22050

// the number of samples in the audio device's buffer. short enough for the
// brick cue to be heard at the right time
const bufferLength = 256

// the amount of a held tone to keep queued ahead of the audio device
const heldLength = 500 * time.Millisecond

// SquareWave returns unsigned 8 bit samples of a square wave. The volume is in
// the range 0.0 to 1.0 and the silence value is the sample value with no
// output.
func SquareWave(frequency int, duration time.Duration, rate int, volume float64, silence uint8) []byte {
	n := int(int64(duration) * int64(rate) / int64(time.Second))
	return SquareWaveFrom(frequency, 0, n, rate, volume, silence)
}

// SquareWaveFrom is like SquareWave but returns n samples starting at the
// sample offset. Consecutive calls continue the wave without a break.
func SquareWaveFrom(frequency int, offset int, n int, rate int, volume float64, silence uint8) []byte {
	if n <= 0 || frequency <= 0 {
		return nil
	}

	volume = max(0.0, min(1.0, volume))
	amp := int(volume * 127)

	hi := uint8(min(255, int(silence)+amp))
	lo := uint8(max(0, int(silence)-amp))

	data := make([]byte, n)
	for i := range data {
		if ((offset+i)*frequency*2/rate)%2 == 0 {
			data[i] = hi
		} else {
			data[i] = lo
		}
	}
	return data
}

// Audio implements the hardware.ToneGenerator interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// volume of the square wave. in the range 0.0 to 1.0
	Volume float64

	// frequency of a tone with no duration and the number of its samples
	// queued so far. the tone is topped up by Service()
	held      int
	heldIndex int
}

// NewAudio is the preferred method of initialisation for the Audio type.
// SDL must have been initialised with INIT_AUDIO.
func NewAudio(volume float64) (*Audio, error) {
	aud := &Audio{
		Volume: volume,
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdl: audio: %v", err)
	}

	logger.Logf(logger.Allow, "sdl", "audio: %dHz (silence %d)", aud.spec.Freq, aud.spec.Silence)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Tone implements the hardware.ToneGenerator interface. Any tone already
// sounding is replaced.
func (aud *Audio) Tone(frequency int, duration time.Duration) {
	sdl.ClearQueuedAudio(aud.id)
	aud.held = 0

	if duration == 0 {
		aud.held = frequency
		aud.heldIndex = 0
		aud.Service()
		return
	}

	aud.queue(SquareWave(frequency, duration, int(aud.spec.Freq), aud.Volume, aud.spec.Silence))
}

// Service keeps a held tone sounding. It should be called regularly.
func (aud *Audio) Service() {
	if aud.held <= 0 {
		return
	}

	// samples are one byte each
	ahead := int(int64(heldLength) * int64(aud.spec.Freq) / int64(time.Second))
	queued := int(sdl.GetQueuedAudioSize(aud.id))
	if queued >= ahead/2 {
		return
	}

	n := ahead - queued
	aud.queue(SquareWaveFrom(aud.held, aud.heldIndex, n, int(aud.spec.Freq), aud.Volume, aud.spec.Silence))
	aud.heldIndex += n
}

func (aud *Audio) queue(data []byte) {
	if len(data) == 0 {
		return
	}
	if err := sdl.QueueAudio(aud.id, data); err != nil {
		logger.Logf(logger.Allow, "sdl", "audio: %v", err)
	}
}

// Stop implements the hardware.ToneGenerator interface.
func (aud *Audio) Stop() {
	sdl.ClearQueuedAudio(aud.id)
	aud.held = 0
}

// Close the audio device.
func (aud *Audio) Close() {
	sdl.CloseAudioDevice(aud.id)
}
