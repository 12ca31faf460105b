package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"runar/contract"
	"runar/domain"
	"runar/identity"
	"runar/internal"
	"runar/notify"
	"runar/relay"
	"runar/repositories"
	"runar/routing"
	"runar/services"
	"runar/store"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// Thin wrapper: run() owns the lifecycle so defers fire before exit.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Session terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := internal.Logger(config.LogLevel)

	entries, err := internal.ParseRoster(config.Roster)
	if err != nil {
		return exitConfig, err
	}
	participants := make([]identity.Participant, 0, len(entries))
	for _, e := range entries {
		participants = append(participants, identity.Participant{
			ID:        e.ID,
			Name:      e.Name,
			Moderator: e.Moderator,
			Connected: true,
		})
	}
	roster := identity.NewRoster(config.ParticipantID, participants)

	// 2. Durable storage (BadgerDB)
	options := badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	blobs := repositories.NewBlobRepository(db, logger)

	// 3. Core components
	messageStore := store.NewMessageStore(roster, blobs, logger)
	if err := messageStore.LoadPairwise(); err != nil {
		logger.Warn("Pairwise history unavailable, starting empty", "error", err)
	}
	if err := messageStore.LoadGroups(); err != nil {
		logger.Warn("Group history unavailable, starting empty", "error", err)
	}

	auditBuffer := domain.NewAuditBuffer()
	var sink contract.NotificationSink = notify.NewSoundSink(notify.SoundConfig{
		Enabled:         config.EnableSound,
		SoundPath:       config.NotificationSound,
		OverrideEnabled: config.OverrideSoundEnabled,
		OverrideSound:   config.OverrideSoundPath,
		Volume:          config.NotificationVolume,
	}, logger)

	// 4. Relay transport
	bus, err := relay.NewNATSRelay(config.NATSURL, config.RelaySubject, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("relay connection failed: %w", err)
	}
	defer bus.Close()

	policy := routing.NewPolicy(roster, bus, messageStore, auditBuffer, sink, logger)
	policy.OnConversationChanged(func(ref domain.ConversationRef) {
		logger.Debug("Conversation changed", "kind", ref.Kind, "id", ref.ID)
	})
	if err := policy.Subscribe(); err != nil {
		return exitRuntime, fmt.Errorf("relay subscribe failed: %w", err)
	}

	service := services.NewMessagingService(policy, messageStore, roster)
	for _, summary := range service.Conversations() {
		logger.Info("Known conversation", "name", summary.Name, "messages", summary.MessageCount)
	}

	logger.Info("Session online",
		"participant", config.ParticipantID,
		"moderator", roster.IsModerator(config.ParticipantID),
		"subject", config.RelaySubject)

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down session...")
	return exitOK, nil
}
