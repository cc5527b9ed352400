package match

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rallied/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newMatch(id, channelID string, created time.Time) *models.Match {
	return &models.Match{
		ID:        id,
		ChannelID: channelID,
		Home: models.Team{
			Name:    "Karasuno",
			Serving: true,
			Score:   3,
			Players: []models.Player{
				{ID: "kageyama-tobio", Name: "Kageyama Tobio", Position: 1, Stats: models.Stats{Set: 95}},
			},
		},
		Away: models.Team{
			Name:  "Aoba Johsai",
			Score: 2,
			Players: []models.Player{
				{ID: "oikawa-tooru", Name: "Oikawa Tooru", Position: 1, Stats: models.Stats{Serve: 95}},
			},
		},
		RallyCount: 5,
		MessageID:  "test-message-id",
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetMatch() {
	match := s.newMatch("test-match-id", "test-channel-id", s.testNow)

	err := s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: match})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetMatch(context.Background(), &GetMatchInput{MatchID: "test-match-id"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-channel-id", retrieved.ChannelID)
	s.Equal("Karasuno", retrieved.Home.Name)
	s.Equal(3, retrieved.Home.Score)
	s.True(retrieved.Home.Serving)
	s.Equal(2, retrieved.Away.Score)
	s.False(retrieved.Away.Serving)
	s.Equal(95, retrieved.Home.Players[0].Stats.Set)
	s.Equal(5, retrieved.RallyCount)
	s.Equal("test-message-id", retrieved.MessageID)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())

	s.True(s.mr.Exists("match:test-match-id"))
	channelValue, err := s.mr.Get("match_channel:test-channel-id")
	s.Require().NoError(err)
	s.Equal("test-match-id", channelValue)
}

func (s *RedisRepositoryTestSuite) TestGetMatchByChannel() {
	err := s.repo.SaveMatch(context.Background(), &SaveMatchInput{
		Match: s.newMatch("test-match-id", "test-channel-id", s.testNow),
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetMatchByChannel(context.Background(), &GetMatchByChannelInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal("test-match-id", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestGetMatchNotFound() {
	_, err := s.repo.GetMatch(context.Background(), &GetMatchInput{MatchID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.repo.GetMatchByChannel(context.Background(), &GetMatchByChannelInput{ChannelID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.SaveMatch(context.Background(), nil))
	s.Error(s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: &models.Match{}}))

	_, err := s.repo.GetMatch(context.Background(), &GetMatchInput{})
	s.Error(err)

	_, err = s.repo.GetMatchByChannel(context.Background(), nil)
	s.Error(err)

	s.Error(s.repo.DeleteMatch(context.Background(), &DeleteMatchInput{}))
}

func (s *RedisRepositoryTestSuite) TestDeleteMatch() {
	err := s.repo.SaveMatch(context.Background(), &SaveMatchInput{
		Match: s.newMatch("test-match-id", "test-channel-id", s.testNow),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteMatch(context.Background(), &DeleteMatchInput{MatchID: "test-match-id"})
	s.Require().NoError(err)

	_, err = s.repo.GetMatch(context.Background(), &GetMatchInput{MatchID: "test-match-id"})
	s.ErrorIs(err, ErrMatchNotFound)
	s.False(s.mr.Exists("match_channel:test-channel-id"))

	err = s.repo.DeleteMatch(context.Background(), &DeleteMatchInput{MatchID: "test-match-id"})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteKeepsNewerChannelMapping() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
		Match: s.newMatch("old-match", "test-channel-id", s.testNow),
	}))
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
		Match: s.newMatch("new-match", "test-channel-id", s.testNow.Add(time.Minute)),
	}))

	s.Require().NoError(s.repo.DeleteMatch(ctx, &DeleteMatchInput{MatchID: "old-match"}))

	retrieved, err := s.repo.GetMatchByChannel(ctx, &GetMatchByChannelInput{ChannelID: "test-channel-id"})
	s.Require().NoError(err)
	s.Equal("new-match", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestListMatches() {
	ctx := context.Background()

	output, err := s.repo.ListMatches(ctx, &ListMatchesInput{})
	s.Require().NoError(err)
	s.Empty(output.Matches)

	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
		Match: s.newMatch("second", "channel-2", s.testNow.Add(time.Hour)),
	}))
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
		Match: s.newMatch("first", "channel-1", s.testNow),
	}))

	output, err = s.repo.ListMatches(ctx, &ListMatchesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 2)
	s.Equal("first", output.Matches[0].ID)
	s.Equal("second", output.Matches[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListMatchesSkipsDangling() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveMatch(ctx, &SaveMatchInput{
		Match: s.newMatch("kept", "channel-1", s.testNow),
	}))
	_, err := s.mr.SAdd("matches", "gone")
	s.Require().NoError(err)

	output, err := s.repo.ListMatches(ctx, &ListMatchesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 1)
	s.Equal("kept", output.Matches[0].ID)
}

func TestNewRedisValidation(t *testing.T) {
	_, err := NewRedis(nil)
	if err == nil {
		t.Fatal("expected error for nil config")
	}

	_, err = NewRedis(&Config{})
	if err == nil {
		t.Fatal("expected error for nil client")
	}
}
