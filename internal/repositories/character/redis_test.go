package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/pkg/clock"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/pkg/idgen"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/repositories/character"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/testutils"
)

// named returns a character entity stored under name
func named(name string) *dnd5e.CharacterState {
	return &dnd5e.CharacterState{Name: name}
}

// itemEntity is a toolkit entity that is not a character
type itemEntity struct{}

func (itemEntity) GetID() string   { return "longsword" }
func (itemEntity) GetType() string { return "item" }

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo character.Repository
	now  time.Time
	ctx  context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.now = time.Date(2025, 7, 18, 9, 30, 0, 0, time.UTC)
	s.ctx = context.Background()

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(s.now),
		IDGen:  idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) isMember(name string) bool {
	ok, err := s.mr.IsMember("characters", name)
	if errors.Is(err, miniredis.ErrKeyNotFound) {
		return false
	}
	s.Require().NoError(err)
	return ok
}

func (s *RedisRepositoryTestSuite) TestNewRedis() {
	_, err := character.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.NewRedis(&character.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpsertAndGet() {
	snap := testutils.CreateTestSnapshot("")

	out, err := s.repo.Upsert(s.ctx, character.UpsertInput{Entity: named(snap.Name), Snapshot: snap})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal("char_1", out.Record.ID)
	s.Equal(s.now, out.Record.SavedAt)

	s.True(s.mr.Exists("character:" + testutils.TestCharacterName))
	members, err := s.mr.Members("characters")
	s.Require().NoError(err)
	s.Equal([]string{testutils.TestCharacterName}, members)

	got, err := s.repo.Get(s.ctx, character.GetInput{Name: testutils.TestCharacterName})
	s.Require().NoError(err)
	s.Equal("char_1", got.Record.ID)
	s.Equal(s.now, got.Record.SavedAt)
	s.Equal(snap.Name, got.Record.Snapshot.Name)
	s.Equal(snap.Level, got.Record.Snapshot.Level)
	s.Equal(snap.Scores, got.Record.Snapshot.Scores)
	s.Equal(snap.Combat, got.Record.Snapshot.Combat)
	s.Equal(snap.SkillsProficiencies, got.Record.Snapshot.SkillsProficiencies)
}

func (s *RedisRepositoryTestSuite) TestUpsertKeepsID() {
	snap := testutils.CreateTestSnapshot("Vex")

	_, err := s.repo.Upsert(s.ctx, character.UpsertInput{Entity: named("Vex"), Snapshot: snap})
	s.Require().NoError(err)

	snap.Level = 4
	out, err := s.repo.Upsert(s.ctx, character.UpsertInput{Entity: named("Vex"), Snapshot: snap})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Equal("char_1", out.Record.ID)

	got, err := s.repo.Get(s.ctx, character.GetInput{Name: "Vex"})
	s.Require().NoError(err)
	s.Equal(4, got.Record.Snapshot.Level)
}

func (s *RedisRepositoryTestSuite) TestUpsertValidation() {
	snap := testutils.CreateTestSnapshot("Vex")

	testCases := []struct {
		name     string
		input    character.UpsertInput
		sentinel error
	}{
		{name: "nil entity", input: character.UpsertInput{Snapshot: snap}, sentinel: core.ErrNilEntity},
		{name: "blank name", input: character.UpsertInput{Entity: named("  "), Snapshot: snap}, sentinel: core.ErrEmptyID},
		{name: "nil character", input: character.UpsertInput{Entity: (*dnd5e.CharacterState)(nil), Snapshot: snap}, sentinel: core.ErrEmptyID},
		{name: "not a character", input: character.UpsertInput{Entity: itemEntity{}, Snapshot: snap}, sentinel: core.ErrInvalidType},
		{name: "nil snapshot", input: character.UpsertInput{Entity: named("Vex")}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Upsert(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			if tc.sentinel != nil {
				s.ErrorIs(err, tc.sentinel)
			}
		})
	}

	s.Empty(s.mr.Keys())
}

func (s *RedisRepositoryTestSuite) TestUpsertTrimsEntityID() {
	out, err := s.repo.Upsert(s.ctx, character.UpsertInput{
		Entity:   named("  Vex "),
		Snapshot: testutils.CreateTestSnapshot("Vex"),
	})
	s.Require().NoError(err)
	s.Equal("Vex", out.Record.Name)
	s.True(s.mr.Exists("character:Vex"))
}

func (s *RedisRepositoryTestSuite) TestUpsertOverwritesCorruptRecord() {
	s.Require().NoError(s.mr.Set("character:Vex", "{not json"))

	_, err := s.repo.Get(s.ctx, character.GetInput{Name: "Vex"})
	s.True(errors.IsDataLoss(err))

	out, err := s.repo.Upsert(s.ctx, character.UpsertInput{Entity: named("Vex"), Snapshot: testutils.CreateTestSnapshot("Vex")})
	s.Require().NoError(err)
	s.True(out.Created)

	_, err = s.repo.Get(s.ctx, character.GetInput{Name: "Vex"})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{Name: "Nobody"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetRecordWithoutSnapshot() {
	s.Require().NoError(s.mr.Set("character:Vex", `{"id": "char_9", "name": "Vex"}`))

	_, err := s.repo.Get(s.ctx, character.GetInput{Name: "Vex"})
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestGetAll() {
	for _, name := range []string{"Zed", "Aria", "Mose"} {
		_, err := s.repo.Upsert(s.ctx, character.UpsertInput{Entity: named(name), Snapshot: testutils.CreateTestSnapshot(name)})
		s.Require().NoError(err)
	}

	// index entry whose record vanished
	_, err := s.mr.SAdd("characters", "Ghost")
	s.Require().NoError(err)

	// indexed record that cannot be decoded
	s.Require().NoError(s.mr.Set("character:Broken", "{not json"))
	_, err = s.mr.SAdd("characters", "Broken")
	s.Require().NoError(err)

	out, err := s.repo.GetAll(s.ctx, character.GetAllInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)
	s.Equal("Aria", out.Records[0].Name)
	s.Equal("Mose", out.Records[1].Name)
	s.Equal("Zed", out.Records[2].Name)

	s.False(s.isMember("Ghost"))
	// left in place for doctor
	s.True(s.isMember("Broken"))
	s.True(s.mr.Exists("character:Broken"))
}

func (s *RedisRepositoryTestSuite) TestGetAllEmpty() {
	out, err := s.repo.GetAll(s.ctx, character.GetAllInput{})
	s.Require().NoError(err)
	s.Empty(out.Records)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Upsert(s.ctx, character.UpsertInput{Entity: named("Vex"), Snapshot: testutils.CreateTestSnapshot("Vex")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{Name: "Vex"})
	s.Require().NoError(err)

	s.False(s.mr.Exists("character:Vex"))
	s.False(s.isMember("Vex"))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{Name: "Vex"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) seedDamagedStore() {
	for _, name := range []string{"Aria", "Lost"} {
		_, err := s.repo.Upsert(s.ctx, character.UpsertInput{Entity: named(name), Snapshot: testutils.CreateTestSnapshot(name)})
		s.Require().NoError(err)
	}
	_, err := s.mr.SRem("characters", "Lost")
	s.Require().NoError(err)

	s.Require().NoError(s.mr.Set("character:Broken", "{not json"))
	_, err = s.mr.SAdd("characters", "Broken", "Ghost")
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCheckReportsDamage() {
	s.seedDamagedStore()

	out, err := s.repo.Check(s.ctx, character.CheckInput{})
	s.Require().NoError(err)

	s.Equal(3, out.Checked)
	s.Equal([]string{"Broken"}, out.Corrupted)
	s.Equal([]string{"Lost"}, out.Unindexed)
	s.Equal([]string{"Ghost"}, out.Dangling)
	s.False(out.Repaired)

	// report only
	s.True(s.mr.Exists("character:Broken"))
	s.True(s.isMember("Ghost"))
}

func (s *RedisRepositoryTestSuite) TestCheckRepair() {
	s.seedDamagedStore()

	out, err := s.repo.Check(s.ctx, character.CheckInput{Repair: true})
	s.Require().NoError(err)
	s.True(out.Repaired)

	s.False(s.mr.Exists("character:Broken"))
	s.False(s.isMember("Broken"))
	s.False(s.isMember("Ghost"))
	s.True(s.isMember("Lost"))
	s.True(s.isMember("Aria"))

	out, err = s.repo.Check(s.ctx, character.CheckInput{Repair: true})
	s.Require().NoError(err)
	s.Equal(2, out.Checked)
	s.Empty(out.Corrupted)
	s.Empty(out.Unindexed)
	s.Empty(out.Dangling)
	s.False(out.Repaired)
}
