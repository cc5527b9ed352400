package collection

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/KirkDiggler/rallied/internal/dice"
	diceMocks "github.com/KirkDiggler/rallied/internal/dice/mocks"
	"github.com/KirkDiggler/rallied/internal/models"
	collectionRepo "github.com/KirkDiggler/rallied/internal/repositories/collection"
	repoMocks "github.com/KirkDiggler/rallied/internal/repositories/collection/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type characterList []models.Character

func (c characterList) Characters() []models.Character {
	return c
}

type CollectionServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRepo   *repoMocks.MockRepository
	mockRoller *diceMocks.MockRoller
	service    *service
	ctx        context.Context

	// Test data
	testOwnerID string
	characters  characterList
}

func (s *CollectionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	s.testOwnerID = "test-user-id"
	s.characters = characterList{
		{ID: "hinata-shoyo", Name: "Hinata Shoyo", Rarity: models.RarityLegendary},
		{ID: "kageyama-tobio", Name: "Kageyama Tobio", Rarity: models.RarityLegendary},
		{ID: "nishinoya-yu", Name: "Nishinoya Yu", Rarity: models.RarityEpic},
		{ID: "tanaka-ryunosuke", Name: "Tanaka Ryunosuke", Rarity: models.RarityCommon},
		{ID: "kenma-kozume", Name: "Kozume Kenma", Rarity: models.RarityRare},
	}

	svc, err := New(&Config{
		Repository:    s.mockRepo,
		Characters:    s.characters,
		Roller:        s.mockRoller,
		StartingPacks: 3,
		PackSize:      3,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *CollectionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCollectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionServiceTestSuite))
}

// keepOrder makes every Fisher-Yates step a no-op
func (s *CollectionServiceTestSuite) keepOrder() {
	s.mockRoller.EXPECT().Intn(gomock.Any()).DoAndReturn(func(n int) int {
		return n - 1
	}).AnyTimes()
}

func (s *CollectionServiceTestSuite) TestGetCollectionCreatesNewOwner() {
	s.mockRepo.EXPECT().
		GetCollection(s.ctx, &collectionRepo.GetCollectionInput{OwnerID: s.testOwnerID}).
		Return(nil, collectionRepo.ErrCollectionNotFound)
	s.mockRepo.EXPECT().
		CreateCollection(s.ctx, &collectionRepo.CreateCollectionInput{OwnerID: s.testOwnerID, PacksLeft: 3}).
		Return(&models.Collection{OwnerID: s.testOwnerID, PacksLeft: 3}, nil)

	output, err := s.service.GetCollection(s.ctx, &GetCollectionInput{OwnerID: s.testOwnerID})
	s.Require().NoError(err)
	s.Equal(3, output.Collection.PacksLeft)
	s.Empty(output.Unlocked)
	s.Equal(5, output.Total)
}

func (s *CollectionServiceTestSuite) TestGetCollectionResolvesCharacters() {
	s.mockRepo.EXPECT().
		GetCollection(s.ctx, gomock.Any()).
		Return(&models.Collection{
			OwnerID:     s.testOwnerID,
			UnlockedIDs: []string{"nishinoya-yu", "hinata-shoyo", "retired-card"},
			PacksLeft:   1,
		}, nil)

	output, err := s.service.GetCollection(s.ctx, &GetCollectionInput{OwnerID: s.testOwnerID})
	s.Require().NoError(err)
	s.Require().Len(output.Unlocked, 2)
	s.Equal("hinata-shoyo", output.Unlocked[0].ID)
	s.Equal("nishinoya-yu", output.Unlocked[1].ID)
}

func (s *CollectionServiceTestSuite) TestGetCollectionRepositoryError() {
	s.mockRepo.EXPECT().GetCollection(s.ctx, gomock.Any()).Return(nil, errors.New("redis down"))

	_, err := s.service.GetCollection(s.ctx, &GetCollectionInput{OwnerID: s.testOwnerID})
	s.ErrorContains(err, "failed to get collection")
}

func (s *CollectionServiceTestSuite) TestGetCollectionInvalidInput() {
	_, err := s.service.GetCollection(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetCollection(s.ctx, &GetCollectionInput{})
	s.Error(err)
}

// expectRecordPack runs the pack draw against unlocked the way the
// repository does inside its transaction
func (s *CollectionServiceTestSuite) expectRecordPack(unlocked []string, packsLeft int) {
	s.mockRepo.EXPECT().
		RecordPack(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *collectionRepo.RecordPackInput) (*collectionRepo.RecordPackOutput, error) {
			s.Equal(s.testOwnerID, input.OwnerID)
			s.Require().NotNil(input.Draw)

			drawn := input.Draw(unlocked)
			all := append(append([]string{}, unlocked...), drawn...)
			return &collectionRepo.RecordPackOutput{
				Collection: &models.Collection{OwnerID: s.testOwnerID, UnlockedIDs: all, PacksLeft: packsLeft},
				PulledIDs:  drawn,
			}, nil
		})
}

func pulledIDs(pulled []models.Character) []string {
	ids := make([]string, len(pulled))
	for i, character := range pulled {
		ids[i] = character.ID
	}
	return ids
}

func (s *CollectionServiceTestSuite) TestOpenPackSkipsUnlocked() {
	s.keepOrder()
	s.mockRepo.EXPECT().
		GetCollection(s.ctx, gomock.Any()).
		Return(&models.Collection{
			OwnerID:     s.testOwnerID,
			UnlockedIDs: []string{"kageyama-tobio"},
			PacksLeft:   2,
		}, nil)
	s.expectRecordPack([]string{"kageyama-tobio"}, 1)

	output, err := s.service.OpenPack(s.ctx, &OpenPackInput{OwnerID: s.testOwnerID})
	s.Require().NoError(err)
	s.Equal([]string{"hinata-shoyo", "nishinoya-yu", "tanaka-ryunosuke"}, pulledIDs(output.Pulled))
	s.Equal(1, output.Collection.PacksLeft)
}

func (s *CollectionServiceTestSuite) TestOpenPackDrawsFromCurrentUnlocked() {
	s.keepOrder()
	s.mockRepo.EXPECT().
		GetCollection(s.ctx, gomock.Any()).
		Return(&models.Collection{OwnerID: s.testOwnerID, PacksLeft: 2}, nil)

	// another pack unlocked these after the collection was read
	s.expectRecordPack([]string{"hinata-shoyo", "nishinoya-yu"}, 0)

	output, err := s.service.OpenPack(s.ctx, &OpenPackInput{OwnerID: s.testOwnerID})
	s.Require().NoError(err)
	s.Equal([]string{"kageyama-tobio", "tanaka-ryunosuke", "kenma-kozume"}, pulledIDs(output.Pulled))
}

func (s *CollectionServiceTestSuite) TestOpenPackShuffles() {
	// every step swaps with the front
	s.mockRoller.EXPECT().Intn(gomock.Any()).Return(0).Times(4)
	s.mockRepo.EXPECT().
		GetCollection(s.ctx, gomock.Any()).
		Return(&models.Collection{OwnerID: s.testOwnerID, PacksLeft: 1}, nil)
	s.expectRecordPack(nil, 0)

	output, err := s.service.OpenPack(s.ctx, &OpenPackInput{OwnerID: s.testOwnerID})
	s.Require().NoError(err)
	s.Equal([]string{"kageyama-tobio", "nishinoya-yu", "tanaka-ryunosuke"}, pulledIDs(output.Pulled))
}

func (s *CollectionServiceTestSuite) TestOpenPackPullsRemainder() {
	s.keepOrder()
	unlocked := []string{"hinata-shoyo", "kageyama-tobio", "nishinoya-yu", "tanaka-ryunosuke"}
	s.mockRepo.EXPECT().
		GetCollection(s.ctx, gomock.Any()).
		Return(&models.Collection{OwnerID: s.testOwnerID, UnlockedIDs: unlocked, PacksLeft: 1}, nil)
	s.expectRecordPack(unlocked, 0)

	output, err := s.service.OpenPack(s.ctx, &OpenPackInput{OwnerID: s.testOwnerID})
	s.Require().NoError(err)
	s.Equal([]string{"kenma-kozume"}, pulledIDs(output.Pulled))
}

func (s *CollectionServiceTestSuite) TestOpenPackCompleteCollectionSpendsPack() {
	unlocked := make([]string, 0, len(s.characters))
	for _, character := range s.characters {
		unlocked = append(unlocked, character.ID)
	}

	s.mockRepo.EXPECT().
		GetCollection(s.ctx, gomock.Any()).
		Return(&models.Collection{OwnerID: s.testOwnerID, UnlockedIDs: unlocked, PacksLeft: 1}, nil)
	s.expectRecordPack(unlocked, 0)

	output, err := s.service.OpenPack(s.ctx, &OpenPackInput{OwnerID: s.testOwnerID})
	s.Require().NoError(err)
	s.Empty(output.Pulled)
	s.Zero(output.Collection.PacksLeft)
}

func (s *CollectionServiceTestSuite) TestOpenPackNoPacksLeft() {
	s.mockRepo.EXPECT().
		GetCollection(s.ctx, gomock.Any()).
		Return(&models.Collection{OwnerID: s.testOwnerID, PacksLeft: 0}, nil)

	_, err := s.service.OpenPack(s.ctx, &OpenPackInput{OwnerID: s.testOwnerID})
	s.ErrorIs(err, ErrNoPacksLeft)
}

func (s *CollectionServiceTestSuite) TestOpenPackLosesRace() {
	s.mockRepo.EXPECT().
		GetCollection(s.ctx, gomock.Any()).
		Return(&models.Collection{OwnerID: s.testOwnerID, PacksLeft: 1}, nil)
	s.mockRepo.EXPECT().
		RecordPack(s.ctx, gomock.Any()).
		Return(nil, collectionRepo.ErrNoPacksLeft)

	_, err := s.service.OpenPack(s.ctx, &OpenPackInput{OwnerID: s.testOwnerID})
	s.ErrorIs(err, ErrNoPacksLeft)
}

func (s *CollectionServiceTestSuite) TestOpenPackNewOwner() {
	s.keepOrder()
	s.mockRepo.EXPECT().
		GetCollection(s.ctx, gomock.Any()).
		Return(nil, collectionRepo.ErrCollectionNotFound)
	s.mockRepo.EXPECT().
		CreateCollection(s.ctx, gomock.Any()).
		Return(&models.Collection{OwnerID: s.testOwnerID, PacksLeft: 3}, nil)
	s.expectRecordPack(nil, 2)

	output, err := s.service.OpenPack(s.ctx, &OpenPackInput{OwnerID: s.testOwnerID})
	s.Require().NoError(err)
	s.Len(output.Pulled, 3)
	s.Equal(2, output.Collection.PacksLeft)
}

func (s *CollectionServiceTestSuite) TestNewValidation() {
	testCases := []struct {
		name string
		cfg  *Config
		err  error
	}{
		{name: "nil config", cfg: nil, err: ErrNilConfig},
		{name: "repository", cfg: &Config{Characters: s.characters, Roller: s.mockRoller}, err: ErrNilRepository},
		{name: "characters", cfg: &Config{Repository: s.mockRepo, Roller: s.mockRoller}, err: ErrNilCharacterSource},
		{name: "roller", cfg: &Config{Repository: s.mockRepo, Characters: s.characters}, err: ErrNilRoller},
		{name: "packs", cfg: &Config{Repository: s.mockRepo, Characters: s.characters, Roller: s.mockRoller, StartingPacks: -1}, err: ErrInvalidPacks},
		{name: "pack size", cfg: &Config{Repository: s.mockRepo, Characters: s.characters, Roller: s.mockRoller, PackSize: -2}, err: ErrInvalidPackSize},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := New(tc.cfg)
			s.ErrorIs(err, tc.err)
		})
	}

	svc, err := New(&Config{Repository: s.mockRepo, Characters: s.characters, Roller: s.mockRoller})
	s.Require().NoError(err)
	s.Equal(DefaultPackSize, svc.packSize)
}

// gatedCharacters holds every caller until all of them have read the catalog
type gatedCharacters struct {
	characters characterList
	arrived    sync.WaitGroup
}

func (g *gatedCharacters) Characters() []models.Character {
	g.arrived.Done()
	g.arrived.Wait()
	return g.characters
}

func TestConcurrentOpenPacksNeverRepeatAPull(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := collectionRepo.NewRedis(&collectionRepo.Config{RedisClient: client})
	require.NoError(t, err)

	const openers = 2
	characters := &gatedCharacters{
		characters: characterList{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B"},
			{ID: "c", Name: "C"},
			{ID: "d", Name: "D"},
			{ID: "e", Name: "E"},
		},
	}
	characters.arrived.Add(openers)

	svc, err := New(&Config{
		Repository:    repo,
		Characters:    characters,
		Roller:        dice.New(&dice.Config{Seed: 7}),
		StartingPacks: openers,
		PackSize:      2,
	})
	require.NoError(t, err)

	ctx := context.Background()

	// create the collection up front so both opens race on the pack itself
	_, err = repo.CreateCollection(ctx, &collectionRepo.CreateCollectionInput{
		OwnerID:   "test-user-id",
		PacksLeft: openers,
	})
	require.NoError(t, err)

	var (
		wg    sync.WaitGroup
		pulls [openers][]string
		errs  [openers]error
	)
	for i := 0; i < openers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			output, err := svc.OpenPack(ctx, &OpenPackInput{OwnerID: "test-user-id"})
			errs[i] = err
			if err == nil {
				pulls[i] = pulledIDs(output.Pulled)
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]int)
	for i := 0; i < openers; i++ {
		require.NoError(t, errs[i])
		assert.Len(t, pulls[i], 2)
		for _, id := range pulls[i] {
			seen[id]++
			assert.Equal(t, 1, seen[id], "character %s pulled by more than one pack", id)
		}
	}

	collection, err := repo.GetCollection(ctx, &collectionRepo.GetCollectionInput{OwnerID: "test-user-id"})
	require.NoError(t, err)
	assert.Zero(t, collection.PacksLeft)
	assert.Len(t, collection.UnlockedIDs, len(seen))
}
