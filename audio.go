/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	toneRate      = 22050
	toneFrequency = 440

	/// Keep about two frames of audio queued while beeping.
	///
	toneQueued = toneRate / 30
)

/// Tone is the buzzer. It plays a square wave while the sound timer runs.
///
type Tone struct {
	device sdl.AudioDeviceID

	/// One cycle of the square wave.
	///
	wave []byte
}

/// OpenTone opens the default audio device for the buzzer.
///
func OpenTone() (*Tone, error) {
	spec := &sdl.AudioSpec{
		Freq:     toneRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	device, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	// build a single period of the wave
	wave := make([]byte, toneRate/toneFrequency)
	for i := range wave {
		if i < len(wave)/2 {
			wave[i] = 0xA0
		} else {
			wave[i] = 0x60
		}
	}

	// start playing immediately, silence is just an empty queue
	sdl.PauseAudioDevice(device, false)

	return &Tone{device: device, wave: wave}, nil
}

/// Update keeps the queue topped up while beeping and drains it when not.
///
func (t *Tone) Update(beeping bool) {
	if !beeping {
		sdl.ClearQueuedAudio(t.device)
		return
	}

	for sdl.GetQueuedAudioSize(t.device) < toneQueued {
		if err := sdl.QueueAudio(t.device, t.wave); err != nil {
			return
		}
	}
}

/// Close the audio device.
///
func (t *Tone) Close() {
	sdl.CloseAudioDevice(t.device)
}
