package creatures_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/creatures"
	"github.com/xavierbriand/dolmenwood-sub001/internal/testutils"
	"github.com/xavierbriand/dolmenwood-sub001/internal/testutils/builders"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    *creatures.RedisRepository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	var err error
	s.repo, err = creatures.NewRedisRepository(&creatures.RedisConfig{Client: client})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	wolf := builders.NewCreatureBuilder("Wolf").
		WithNumberAppearing("2d6").
		WithAttack("Bite", 3, "1d6").
		Build()

	s.Require().NoError(s.repo.Save(s.ctx, wolf))

	got, err := s.repo.GetByName(s.ctx, creatures.GetInput{Name: "Wolf"})
	s.Require().NoError(err)
	s.Assert().Equal(wolf.Name, got.Creature.Name)
	s.Assert().Equal(wolf.NumberAppearing, got.Creature.NumberAppearing)
	s.Assert().Equal(wolf.Attacks, got.Creature.Attacks)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.GetByName(s.ctx, creatures.GetInput{Name: "Dragon"})
	s.Require().Error(err)
	s.Assert().True(errors.IsCreatureNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListOrderedByName() {
	for _, name := range []string{"Wolf", "Basilisk", "Owlbear"} {
		s.Require().NoError(s.repo.Save(s.ctx, builders.NewCreatureBuilder(name).Build()))
	}

	got, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got.Creatures, 3)
	s.Assert().Equal("Basilisk", got.Creatures[0].Name)
	s.Assert().Equal("Owlbear", got.Creatures[1].Name)
	s.Assert().Equal("Wolf", got.Creatures[2].Name)
}

func (s *RedisRepositoryTestSuite) TestSaveValidatesInput() {
	s.Assert().Error(s.repo.Save(s.ctx, nil))
}
