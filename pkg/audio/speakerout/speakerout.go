// Package speakerout plays audio cues on the default output device.
package speakerout

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/golangdaddy/highway/pkg/audio"
)

type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Start opens the device with a 100ms buffer and begins playing c.
func Start(c *audio.Cues) error {
	rate := c.SampleRate()
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	c.Locker = speakerLock{}
	speaker.Play(c.Streamer())
	return nil
}

// Stop silences playback and releases the device.
func Stop() {
	speaker.Clear()
	speaker.Close()
}
