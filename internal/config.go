package internal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	ParticipantID string `env:"PARTICIPANT_ID,required=true"`
	// Roster is the comma-separated session membership, entries formatted
	// as id=name or id=name:moderator. It stands in for the platform's
	// identity service.
	Roster string `env:"ROSTER,required=true"`

	NATSURL      string `env:"NATS_URL,default=nats://127.0.0.1:4222"`
	RelaySubject string `env:"RELAY_SUBJECT,default=runar.session"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`

	EnableSound          bool    `env:"ENABLE_SOUND,default=true"`
	NotificationSound    string  `env:"NOTIFICATION_SOUND,default=sounds/notify.ogg"`
	OverrideSoundEnabled bool    `env:"OVERRIDE_SOUND_ENABLED,default=false"`
	OverrideSoundPath    string  `env:"OVERRIDE_SOUND_PATH"`
	NotificationVolume   float64 `env:"NOTIFICATION_VOLUME,default=0.8"`
}

// ViewerConfig is the subset the read-only log viewer needs. It skips
// the session fields so the viewer starts with just a database path.
type ViewerConfig struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
}

// RosterEntry is one parsed ROSTER element.
type RosterEntry struct {
	ID        string
	Name      string
	Moderator bool
}

// ParseRoster parses the ROSTER variable.
func ParseRoster(raw string) ([]RosterEntry, error) {
	var out []RosterEntry
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, rest, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("ROSTER entry %q must be id=name[:moderator]", part)
		}
		name, flag, _ := strings.Cut(rest, ":")
		out = append(out, RosterEntry{ID: id, Name: name, Moderator: flag == "moderator"})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ROSTER is empty")
	}
	return out, nil
}

// Logger builds the process logger from the configured level string.
func Logger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		l = slog.LevelDebug
	case "WARN":
		l = slog.LevelWarn
	case "ERROR":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
