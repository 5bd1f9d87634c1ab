package alert

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 10
	toneLength = 250 * time.Millisecond
	toneGap    = 120 * time.Millisecond
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	return speakerErr
}

// chime returns two rising tones separated by a short silence.
func chime() (beep.Streamer, error) {
	low, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return nil, err
	}

	high, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return nil, err
	}

	gap, err := generators.SineTone(sampleRate, 440)
	if err != nil {
		return nil, err
	}

	seq := beep.Seq(
		beep.Take(sampleRate.N(toneLength), low),
		&effects.Volume{Streamer: beep.Take(sampleRate.N(toneGap), gap), Silent: true},
		beep.Take(sampleRate.N(toneLength), high),
	)

	return &effects.Volume{
		Streamer: seq,
		Base:     2,
		Volume:   -2,
	}, nil
}

// Bell plays a short chime and waits for it to finish or for ctx to be
// cancelled.
func Bell(ctx context.Context) error {
	stream, err := chime()
	if err != nil {
		return err
	}

	if err = initSpeaker(); err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
