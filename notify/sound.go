// Package notify implements the fire-and-forget receipt side effect.
package notify

import "log/slog"

// SoundConfig mirrors the user-facing notification settings: a global
// enable switch, a default sound, and a moderator-supplied override.
type SoundConfig struct {
	Enabled         bool
	SoundPath       string
	OverrideEnabled bool
	OverrideSound   string
	Volume          float64
}

// SoundSink asks the platform audio layer to play the configured
// notification sound. Audio output itself is presentation; this sink
// resolves which sound applies and records the play request, and the
// presentation layer substitutes a real player behind the same
// contract seam.
type SoundSink struct {
	cfg SoundConfig
	log *slog.Logger
}

func NewSoundSink(cfg SoundConfig, log *slog.Logger) *SoundSink {
	return &SoundSink{cfg: cfg, log: log}
}

func (s *SoundSink) Notify() {
	if !s.cfg.Enabled {
		return
	}
	s.log.Info("Playing notification sound", "src", s.source(), "volume", s.cfg.Volume)
}

// source picks the moderator override when one is configured.
func (s *SoundSink) source() string {
	if s.cfg.OverrideEnabled {
		return s.cfg.OverrideSound
	}
	return s.cfg.SoundPath
}

// Noop drops every notification; used where no sink is wired.
type Noop struct{}

func (Noop) Notify() {}
