package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tennisscore/internal/dependencies/mocks"
	"github.com/mcoot/tennisscore/internal/model"
	"github.com/mcoot/tennisscore/internal/services/scoring"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) result(sequence string) *model.GameResult {
	scores, err := scoring.New().ProcessSequence(sequence)
	s.Require().NoError(err)
	return &model.GameResult{Sequence: sequence, Scores: scores}
}

func (s *StorageSuite) TestSaveAndGetResult() {
	result := s.result("ABABAA")

	err := s.storage.SaveResult(s.ctx, result)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetResult(s.ctx, "ABABAA")
	s.Require().NoError(err)
	s.Equal(result, retrieved)
}

func (s *StorageSuite) TestGetResultNotFound() {
	_, err := s.storage.GetResult(s.ctx, "ABAB")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *StorageSuite) TestKeyIsCaseSensitive() {
	// The result echoes the caller's sequence, so "abab" and "ABAB" are cached separately
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))

	_, err := s.storage.GetResult(s.ctx, "abab")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *StorageSuite) TestDeleteResult() {
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))

	err := s.storage.DeleteResult(s.ctx, "ABAB")
	s.Require().NoError(err)

	_, err = s.storage.GetResult(s.ctx, "ABAB")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *StorageSuite) TestReturnedResultIsACopy() {
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))

	first, err := s.storage.GetResult(s.ctx, "ABAB")
	s.Require().NoError(err)
	first.Scores[0].Status = model.GameStatusFinished

	second, err := s.storage.GetResult(s.ctx, "ABAB")
	s.Require().NoError(err)
	s.Equal(model.GameStatusInProgress, second.Scores[0].Status)
}

func (s *StorageSuite) TestEntriesExpire() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = NewWithTTL(time.Minute, clk)
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))

	clk.Advance(59 * time.Second)
	_, err := s.storage.GetResult(s.ctx, "ABAB")
	s.Require().NoError(err)

	clk.Advance(time.Second)
	_, err = s.storage.GetResult(s.ctx, "ABAB")
	s.ErrorIs(err, model.ErrResultNotFound)
	s.Equal(0, s.storage.Len())
}

func (s *StorageSuite) TestSaveRefreshesExpiry() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = NewWithTTL(time.Minute, clk)
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))

	clk.Advance(50 * time.Second)
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))

	clk.Advance(50 * time.Second)
	_, err := s.storage.GetResult(s.ctx, "ABAB")
	s.NoError(err)
}

func (s *StorageSuite) saveMany(n int, prefix string) {
	for i := 0; i < n; i++ {
		s.Require().NoError(s.storage.SaveResult(s.ctx, &model.GameResult{Sequence: fmt.Sprintf("%s%d", prefix, i)}))
	}
}

func (s *StorageSuite) TestSaveSweepsExpiredEntries() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = NewWithTTL(time.Hour, clk)
	s.saveMany(10000, "old")
	s.Equal(10000, s.storage.Len())

	clk.Advance(48 * time.Hour)
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))

	s.Equal(1, s.storage.Len())
	_, err := s.storage.GetResult(s.ctx, "ABAB")
	s.NoError(err)
}

func (s *StorageSuite) TestSweepKeepsLiveEntries() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = NewWithTTL(time.Minute, clk)
	s.saveMany(5, "early")

	clk.Advance(30 * time.Second)
	s.saveMany(5, "late")

	clk.Advance(30 * time.Second)
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))

	s.Equal(6, s.storage.Len())
	_, err := s.storage.GetResult(s.ctx, "late0")
	s.NoError(err)
	_, err = s.storage.GetResult(s.ctx, "early0")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *StorageSuite) TestRefreshedEntrySurvivesSweep() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = NewWithTTL(time.Minute, clk)
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))
	s.saveMany(3, "other")

	clk.Advance(50 * time.Second)
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))

	clk.Advance(20 * time.Second)
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("BABA")))

	s.Equal(2, s.storage.Len())
	_, err := s.storage.GetResult(s.ctx, "ABAB")
	s.NoError(err)
}

func (s *StorageSuite) TestMaxEntriesEvictsOldest() {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = NewBounded(0, 3, clk)
	s.saveMany(3, "seq")

	// Re-saving moves an entry to the back of the eviction order
	s.Require().NoError(s.storage.SaveResult(s.ctx, &model.GameResult{Sequence: "seq0"}))
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.result("ABAB")))

	s.Equal(3, s.storage.Len())
	_, err := s.storage.GetResult(s.ctx, "seq1")
	s.ErrorIs(err, model.ErrResultNotFound)
	_, err = s.storage.GetResult(s.ctx, "seq0")
	s.NoError(err)
}

func (s *StorageSuite) TestDefaultStorageIsBounded() {
	s.saveMany(DefaultMaxEntries+10, "seq")
	s.Equal(DefaultMaxEntries, s.storage.Len())
}
