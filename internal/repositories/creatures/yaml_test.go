package creatures_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/creatures"
)

type YAMLRepositoryTestSuite struct {
	suite.Suite
	repo creatures.Repository
	ctx  context.Context
}

func TestYAMLRepositorySuite(t *testing.T) {
	suite.Run(t, new(YAMLRepositoryTestSuite))
}

func (s *YAMLRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	var err error
	s.repo, err = creatures.NewYAMLRepository(&creatures.YAMLConfig{
		Dir: filepath.Join("testdata", "valid"),
	})
	s.Require().NoError(err)
}

func (s *YAMLRepositoryTestSuite) TestGetByName() {
	got, err := s.repo.GetByName(s.ctx, creatures.GetInput{Name: "Wolf"})
	s.Require().NoError(err)
	s.Assert().Equal("Wolf", got.Creature.Name)
	s.Assert().Equal("2d6", got.Creature.NumberAppearing)
	s.Require().Len(got.Creature.Attacks, 1)
	s.Assert().Equal("1d6", got.Creature.Attacks[0].Damage)
}

func (s *YAMLRepositoryTestSuite) TestGetByNameNotFound() {
	_, err := s.repo.GetByName(s.ctx, creatures.GetInput{Name: "Dragon"})
	s.Require().Error(err)
	s.Assert().True(errors.IsCreatureNotFound(err))
	s.Assert().Equal("Dragon", errors.GetMeta(err)["creature"])
}

func (s *YAMLRepositoryTestSuite) TestListOrderedByName() {
	got, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got.Creatures, 2)
	s.Assert().Equal("Owlbear", got.Creatures[0].Name)
	s.Assert().Equal("Wolf", got.Creatures[1].Name)
}

func (s *YAMLRepositoryTestSuite) TestRejectsBadDiceNotation() {
	_, err := creatures.NewYAMLRepository(&creatures.YAMLConfig{
		Dir: filepath.Join("testdata", "baddice"),
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidNotation(err))
}

func (s *YAMLRepositoryTestSuite) TestRequiresDir() {
	_, err := creatures.NewYAMLRepository(&creatures.YAMLConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
