package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/clock"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/history"
	"github.com/xavierbriand/dolmenwood-sub001/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    history.Repository
	clock   *clock.Fixed
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
	s.clock = &clock.Fixed{Instant: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	var err error
	s.repo, err = history.NewRedisRepository(&history.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) createSession(records ...history.Record) *history.Session {
	output, err := s.repo.Create(s.ctx, history.CreateInput{
		SessionID: "session_1",
		Context:   "travel_day_3",
		Records:   records,
	})
	s.Require().NoError(err)
	return output.Session
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created := s.createSession(history.Record{
		RecordID: "r1",
		Kind:     history.KindRoll,
		Summary:  "1d6 = 4",
		Notation: "1d6",
		Total:    4,
	})

	s.Assert().Equal(s.clock.Instant, created.CreatedAt)
	s.Assert().Equal(s.clock.Instant.Add(4*time.Hour), created.ExpiresAt, "default TTL is four hours")

	got, err := s.repo.Get(s.ctx, history.GetInput{SessionID: "session_1", Context: "travel_day_3"})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Records, 1)
	s.Assert().Equal("1d6 = 4", got.Session.Records[0].Summary)
}

func (s *RedisRepositoryTestSuite) TestCreateHonoursCustomTTL() {
	output, err := s.repo.Create(s.ctx, history.CreateInput{
		SessionID: "session_1",
		Context:   "camp_watch_2",
		TTL:       30 * time.Minute,
	})
	s.Require().NoError(err)
	s.Assert().Equal(s.clock.Instant.Add(30*time.Minute), output.Session.ExpiresAt)
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, history.GetInput{SessionID: "nope", Context: "travel_day_3"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetExpiredSession() {
	s.createSession()

	s.clock.Instant = s.clock.Instant.Add(5 * time.Hour)

	_, err := s.repo.Get(s.ctx, history.GetInput{SessionID: "session_1", Context: "travel_day_3"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateAppendsRecords() {
	session := s.createSession(history.Record{RecordID: "r1", Kind: history.KindEncounter})

	session.Records = append(session.Records, history.Record{RecordID: "r2", Kind: history.KindRoll})
	s.Require().NoError(s.repo.Update(s.ctx, session))

	got, err := s.repo.Get(s.ctx, history.GetInput{SessionID: "session_1", Context: "travel_day_3"})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Records, 2)
	s.Assert().Equal("r2", got.Session.Records[1].RecordID)
}

func (s *RedisRepositoryTestSuite) TestUpdateExpiredSessionFails() {
	session := s.createSession()

	s.clock.Instant = s.clock.Instant.Add(5 * time.Hour)

	err := s.repo.Update(s.ctx, session)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteCountsRecords() {
	s.createSession(
		history.Record{RecordID: "r1", Kind: history.KindEncounter},
		history.Record{RecordID: "r2", Kind: history.KindRoll},
	)

	output, err := s.repo.Delete(s.ctx, history.DeleteInput{SessionID: "session_1", Context: "travel_day_3"})
	s.Require().NoError(err)
	s.Assert().Equal(2, output.RecordsDeleted)

	_, err = s.repo.Get(s.ctx, history.GetInput{SessionID: "session_1", Context: "travel_day_3"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteMissingSession() {
	output, err := s.repo.Delete(s.ctx, history.DeleteInput{SessionID: "nope", Context: "travel_day_3"})
	s.Require().NoError(err)
	s.Assert().Equal(0, output.RecordsDeleted)
}

func (s *RedisRepositoryTestSuite) TestInputValidation() {
	_, err := s.repo.Create(s.ctx, history.CreateInput{Context: "travel_day_3"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, history.GetInput{SessionID: "session_1"})
	s.Assert().True(errors.IsInvalidArgument(err))

	s.Assert().True(errors.IsInvalidArgument(s.repo.Update(s.ctx, nil)))
}
