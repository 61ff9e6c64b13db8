package patients

import (
	"context"
	"log"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"

	"github.com/stastashpulatov/clinic-bot/internal/messaging"
)

// TelegramLoginPrefix is the synthetic login prefix linking bot users to
// plugin accounts. There is no dedicated identity table; the login IS the
// linkage.
const TelegramLoginPrefix = "tg_patient_"

// Login derives the synthetic account login for a Telegram user ID.
func Login(telegramID string) string {
	return TelegramLoginPrefix + telegramID
}

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
	suffix    func() int
}

// NewService wires the patient resolver. publisher may be nil.
func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		// callers without a Telegram ID get a random 4-digit login suffix
		suffix: func() int { return rand.IntN(9000) + 1000 },
	}
}

// ResolveOrCreate returns the account ID for a bot user, creating the
// account on first contact: random password, placeholder email, display
// name as supplied, phone stored as a side attribute.
func (s *Service) ResolveOrCreate(ctx context.Context, telegramID, displayName, phone string) (int64, error) {
	login := Login(telegramID)
	if telegramID == "" {
		login = Login(strconv.Itoa(s.suffix()))
	}

	id, found, err := s.repo.FindIDByLogin(ctx, login)
	if err != nil {
		return 0, err
	}
	if found {
		return id, nil
	}

	acc := Account{
		Login:       login,
		Password:    uuid.NewString(),
		Email:       login + "@example.com",
		DisplayName: displayName,
	}

	id, err = s.repo.CreateAccount(ctx, acc)
	if err != nil {
		return 0, err
	}

	// Attribute writes are best-effort, matching the plugin's behavior.
	if err := s.repo.SetAttribute(ctx, id, "mobile_number", phone); err != nil {
		log.Printf("Warning: failed to store patient phone: %v", err)
	}
	if err := s.repo.SetAttribute(ctx, id, "first_name", displayName); err != nil {
		log.Printf("Warning: failed to store patient first name: %v", err)
	}

	if s.publisher != nil {
		base := messaging.NewBaseEvent(messaging.EventPatientCreated)
		event := messaging.PatientCreatedEvent{
			BaseEvent: base,
			Data: messaging.PatientCreatedData{
				PatientID:   id,
				Login:       login,
				DisplayName: displayName,
				TelegramID:  telegramID,
				CreatedAt:   base.Timestamp,
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventPatientCreated, event); err != nil {
			log.Printf("Warning: failed to publish patient.created event: %v", err)
		}
	}

	return id, nil
}

// FindByTelegramID resolves an existing bot account without creating one.
func (s *Service) FindByTelegramID(ctx context.Context, telegramID string) (int64, bool, error) {
	return s.repo.FindIDByLogin(ctx, Login(telegramID))
}
