package rally

import (
	"strings"
	"testing"

	"github.com/KirkDiggler/rallied/internal/dice"
	diceMocks "github.com/KirkDiggler/rallied/internal/dice/mocks"
	"github.com/KirkDiggler/rallied/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	engine     *Engine

	home models.Team
	away models.Team
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)

	engine, err := New(&Config{Roller: s.mockRoller})
	s.Require().NoError(err)
	s.engine = engine

	s.home = karasuno(true)
	s.away = aobaJohsai(false)
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

// expectDraws scripts the roller to return draws in order, exactly once each
func (s *EngineTestSuite) expectDraws(draws ...float64) {
	i := 0
	s.mockRoller.EXPECT().Float64().DoAndReturn(func() float64 {
		v := draws[i]
		i++
		return v
	}).Times(len(draws))
}

func (s *EngineTestSuite) lastLine(result *models.RallyResult) string {
	s.Require().NotEmpty(result.Log)
	return result.Log[len(result.Log)-1]
}

func (s *EngineTestSuite) TestReceptionErrorWhileServing() {
	// serve lands, reception misses (Watari is clamped at 95%), cause draw
	s.expectDraws(0.0, 0.99, 0.1)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Equal(models.SideHome, result.Winner)
	s.Equal([]string{
		"Kageyama Tobio serves (82.7% chance)",
		"✅ Good serve!",
		"Watari Shinji receives (95.0% chance)",
		"❌ Reception error - ball hits the ground! Point to Karasuno",
	}, result.Log)
	s.Equal(1, result.Exchanges)
	s.False(result.CapReached)

	home, away, sideout := ApplyPoint(s.home, s.away, result.Winner)
	s.False(sideout)
	s.Equal(1, home.Score)
	s.Equal(0, away.Score)
	s.True(home.Serving)
	s.False(away.Serving)
	s.Equal(positions(s.home), positions(home), "no rotation while holding serve")
}

func (s *EngineTestSuite) TestServiceErrorGivesSideout() {
	s.expectDraws(0.99, 0.5)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Equal(models.SideAway, result.Winner)
	s.Equal("❌ Service error - ball goes out! Point to Aoba Johsai", s.lastLine(result))
	s.Len(result.Log, 2)
	s.Zero(result.Exchanges)

	home, away, sideout := ApplyPoint(s.home, s.away, result.Winner)
	s.True(sideout)
	s.Equal(0, home.Score)
	s.Equal(1, away.Score)
	s.True(away.Serving)
	s.False(home.Serving)

	rotated := positions(away)
	s.Equal(2, rotated["aoba-1"])
	s.Equal(1, rotated["aoba-6"])
	s.Equal(7, rotated["aoba-7"])
	s.Equal(positions(s.home), positions(home))
}

func (s *EngineTestSuite) TestAwayServes() {
	s.home.Serving = false
	s.away.Serving = true
	s.expectDraws(0.0, 0.99, 0.9)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Equal(models.SideAway, result.Winner)
	s.True(strings.HasPrefix(result.Log[0], "Oikawa Tooru serves"))
	s.Contains(result.Log[2], "Nishinoya Yu receives")
	s.Equal("❌ Reception error - ball goes out of bounds! Point to Aoba Johsai", s.lastLine(result))
}

func (s *EngineTestSuite) TestSettingError() {
	s.expectDraws(0.0, 0.0, 0.99, 0.55)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Equal(models.SideHome, result.Winner)
	s.Contains(result.Log, "✅ Good reception!")
	s.True(strings.HasPrefix(result.Log[4], "Oikawa Tooru sets ("))
	s.Equal("❌ Setting error - ball goes into the net! Point to Karasuno", s.lastLine(result))
}

func (s *EngineTestSuite) TestAttackKill() {
	// block misses, attack lands, kill roll under 0.7
	s.expectDraws(0.0, 0.0, 0.0, 0.99, 0.0, 0.1)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Equal(models.SideAway, result.Winner)
	s.Contains(result.Log[6], "Iwaizumi Hajime attacks (")
	s.Contains(result.Log[6], "vs Tsukishima Kei blocking (54.8% chance)")
	s.Equal("⚡ Kill! Iwaizumi Hajime puts it away! Point to Aoba Johsai", s.lastLine(result))
}

func (s *EngineTestSuite) TestAttackError() {
	s.expectDraws(0.0, 0.0, 0.0, 0.99, 0.99, 0.9)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Equal(models.SideHome, result.Winner)
	s.Equal("❌ Attack error - Iwaizumi Hajime hits it long! Point to Karasuno", s.lastLine(result))
}

func (s *EngineTestSuite) TestBlockKill() {
	s.expectDraws(0.0, 0.0, 0.0, 0.0, 0.5, 0.1)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Equal(models.SideHome, result.Winner)
	s.Equal("🛡️ Block kill! Tsukishima Kei stuff blocks! Point to Karasuno", s.lastLine(result))
}

func (s *EngineTestSuite) TestDefendedAttackSwitchesSides() {
	// exchange 1: hard attack dug alive; exchange 2: Karasuno digs and misses
	s.expectDraws(
		0.0,
		0.0, 0.0, 0.99, 0.0, 0.99,
		0.99, 0.7,
	)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Equal(models.SideAway, result.Winner)
	s.Equal(2, result.Exchanges)
	s.Contains(result.Log, "💥 Hard-driven attack by Iwaizumi Hajime - defended by Karasuno!")
	s.True(strings.HasPrefix(result.Log[len(result.Log)-2], "Nishinoya Yu digs ("))
	s.Equal("❌ Dig error - ball goes out of bounds! Point to Aoba Johsai", s.lastLine(result))
}

func (s *EngineTestSuite) TestBlockTouchPossession() {
	// touch stays on the blocking side: Karasuno plays it and digs
	s.expectDraws(
		0.0,
		0.0, 0.0, 0.0, 0.5, 0.99, 0.0,
		0.99, 0.1,
	)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Contains(result.Log, "🛡️ Block touch! Ball deflected by Tsukishima Kei stays on Karasuno's side")
	s.True(strings.HasPrefix(result.Log[len(result.Log)-2], "Nishinoya Yu digs ("))
	s.Equal(models.SideAway, result.Winner)
}

func (s *EngineTestSuite) TestBlockTouchFallsBack() {
	// touch falls back to Aoba Johsai, who dig again
	s.expectDraws(
		0.0,
		0.0, 0.0, 0.0, 0.5, 0.99, 0.99,
		0.99, 0.1,
	)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Contains(result.Log, "🛡️ Block touch! Ball deflected by Tsukishima Kei back to Aoba Johsai")
	s.True(strings.HasPrefix(result.Log[len(result.Log)-2], "Watari Shinji digs ("))
	s.Equal(models.SideHome, result.Winner)
}

func (s *EngineTestSuite) TestExchangeCapFallback() {
	draws := []float64{0.0}
	for i := 0; i < 20; i++ {
		stay := 0.99
		if i%2 == 0 {
			stay = 0.0
		}
		// receive, set, block, attack, touch (not a kill), possession
		draws = append(draws, 0.0, 0.0, 0.0, 0.0, 0.99, stay)
	}
	draws = append(draws, 0.2)
	s.expectDraws(draws...)

	result, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.True(result.CapReached)
	s.Equal(20, result.Exchanges)
	s.Equal(models.SideHome, result.Winner)
	s.Equal("🏐 Long rally ends after 20 exchanges (exchange cap reached)! Point to Karasuno", s.lastLine(result))
}

func (s *EngineTestSuite) TestSimulateDoesNotModifyTeams() {
	s.expectDraws(0.99, 0.5)
	home, away := s.home.Clone(), s.away.Clone()

	_, err := s.engine.Simulate(&s.home, &s.away)
	s.Require().NoError(err)

	s.Equal(home, s.home)
	s.Equal(away, s.away)
}

func (s *EngineTestSuite) TestSimulateRejectsBadInput() {
	_, err := s.engine.Simulate(nil, &s.away)
	s.ErrorIs(err, ErrNilTeam)

	s.away.Serving = true
	_, err = s.engine.Simulate(&s.home, &s.away)
	s.ErrorIs(err, ErrInvalidServeState)

	s.away.Serving = false
	s.home.Players[2].Position = models.PositionReserve
	_, err = s.engine.Simulate(&s.home, &s.away)
	s.ErrorIs(err, ErrInvalidLineup)
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil)
	assert.Equal(t, ErrNilConfig, err)

	_, err = New(&Config{})
	assert.Equal(t, ErrNilRoller, err)

	bad := DefaultTunables()
	bad.ExchangeCap = 0
	_, err = New(&Config{Roller: dice.New(&dice.Config{Seed: 1}), Tunables: bad})
	assert.ErrorIs(t, err, ErrInvalidTunables)

	engine, err := New(&Config{Roller: dice.New(&dice.Config{Seed: 1})})
	require.NoError(t, err)
	assert.Equal(t, 20, engine.tunables.ExchangeCap)
}

func TestRalliesAlwaysTerminate(t *testing.T) {
	engine, err := New(&Config{Roller: dice.New(&dice.Config{Seed: 2024})})
	if err != nil {
		t.Fatal(err)
	}

	home, away := karasuno(true), aobaJohsai(false)
	for i := 0; i < 2000; i++ {
		result, err := engine.Simulate(&home, &away)
		if err != nil {
			t.Fatal(err)
		}
		if result.Winner != models.SideHome && result.Winner != models.SideAway {
			t.Fatalf("rally %d: unexpected winner %q", i, result.Winner)
		}
		if result.Exchanges > DefaultTunables().ExchangeCap {
			t.Fatalf("rally %d: %d exchanges", i, result.Exchanges)
		}
		last := result.Log[len(result.Log)-1]
		if !strings.Contains(last, "Point to") {
			t.Fatalf("rally %d: last line %q does not award the point", i, last)
		}

		before := home.Score + away.Score
		home, away, _ = ApplyPoint(home, away, result.Winner)
		if home.Score+away.Score != before+1 {
			t.Fatalf("rally %d: score did not advance by one", i)
		}
		if home.Serving == away.Serving {
			t.Fatalf("rally %d: serve state broken", i)
		}
	}
}
