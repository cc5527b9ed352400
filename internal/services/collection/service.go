package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/rallied/internal/common/logging"
	"github.com/KirkDiggler/rallied/internal/dice"
	"github.com/KirkDiggler/rallied/internal/models"
	collectionRepo "github.com/KirkDiggler/rallied/internal/repositories/collection"
	"go.uber.org/zap"
)

type service struct {
	repo          collectionRepo.Repository
	characters    CharacterSource
	roller        dice.Roller
	logger        *zap.Logger
	startingPacks int
	packSize      int
}

// New creates a new collection service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Characters == nil {
		return nil, ErrNilCharacterSource
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	if cfg.StartingPacks < 0 {
		return nil, ErrInvalidPacks
	}

	packSize := cfg.PackSize
	if packSize == 0 {
		packSize = DefaultPackSize
	}
	if packSize < 1 {
		return nil, ErrInvalidPackSize
	}

	return &service{
		repo:          cfg.Repository,
		characters:    cfg.Characters,
		roller:        cfg.Roller,
		logger:        logging.OrNop(cfg.Logger),
		startingPacks: cfg.StartingPacks,
		packSize:      packSize,
	}, nil
}

// load fetches the owner's collection, creating it on first use
func (s *service) load(ctx context.Context, ownerID string) (*models.Collection, error) {
	collection, err := s.repo.GetCollection(ctx, &collectionRepo.GetCollectionInput{
		OwnerID: ownerID,
	})
	if err == nil {
		return collection, nil
	}
	if !errors.Is(err, collectionRepo.ErrCollectionNotFound) {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}

	collection, err = s.repo.CreateCollection(ctx, &collectionRepo.CreateCollectionInput{
		OwnerID:   ownerID,
		PacksLeft: s.startingPacks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	s.logger.Info("collection created",
		zap.String("owner_id", ownerID),
		zap.Int("packs", collection.PacksLeft))

	return collection, nil
}

// GetCollection returns the owner's collection
func (s *service) GetCollection(ctx context.Context, input *GetCollectionInput) (*GetCollectionOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("owner ID is required")
	}

	collection, err := s.load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	all := s.characters.Characters()
	unlocked := make([]models.Character, 0, len(collection.UnlockedIDs))
	for _, character := range all {
		if collection.Has(character.ID) {
			unlocked = append(unlocked, character)
		}
	}

	return &GetCollectionOutput{
		Collection: collection,
		Unlocked:   unlocked,
		Total:      len(all),
	}, nil
}

// OpenPack pulls random characters the owner has not unlocked yet. A pack is
// spent even when nothing is left to pull.
func (s *service) OpenPack(ctx context.Context, input *OpenPackInput) (*OpenPackOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("owner ID is required")
	}

	collection, err := s.load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if collection.PacksLeft <= 0 {
		return nil, ErrNoPacksLeft
	}

	all := s.characters.Characters()
	byID := make(map[string]models.Character, len(all))
	for _, character := range all {
		byID[character.ID] = character
	}

	// The repository runs the draw against the unlocked set it read inside
	// its transaction, so concurrent opens never pull the same character
	draw := func(unlockedIDs []string) []string {
		unlocked := make(map[string]bool, len(unlockedIDs))
		for _, id := range unlockedIDs {
			unlocked[id] = true
		}

		available := make([]models.Character, 0, len(all))
		for _, character := range all {
			if !unlocked[character.ID] {
				available = append(available, character)
			}
		}

		pulled := s.draw(available)
		ids := make([]string, len(pulled))
		for i, character := range pulled {
			ids[i] = character.ID
		}
		return ids
	}

	output, err := s.repo.RecordPack(ctx, &collectionRepo.RecordPackInput{
		OwnerID: input.OwnerID,
		Draw:    draw,
	})
	if err != nil {
		if errors.Is(err, collectionRepo.ErrNoPacksLeft) {
			return nil, ErrNoPacksLeft
		}
		return nil, fmt.Errorf("failed to record pack: %w", err)
	}

	pulled := make([]models.Character, 0, len(output.PulledIDs))
	for _, id := range output.PulledIDs {
		if character, ok := byID[id]; ok {
			pulled = append(pulled, character)
		}
	}

	s.logger.Info("pack opened",
		zap.String("owner_id", input.OwnerID),
		zap.Strings("pulled", output.PulledIDs),
		zap.Int("packs_left", output.Collection.PacksLeft))

	return &OpenPackOutput{
		Pulled:     pulled,
		Collection: output.Collection,
	}, nil
}

// draw shuffles the candidates with Fisher-Yates and keeps the first packSize
func (s *service) draw(candidates []models.Character) []models.Character {
	shuffled := make([]models.Character, len(candidates))
	copy(shuffled, candidates)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.roller.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if len(shuffled) > s.packSize {
		shuffled = shuffled[:s.packSize]
	}
	return shuffled
}
