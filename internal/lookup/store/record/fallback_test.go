package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"isocountry/internal/lookup/models"
	"isocountry/internal/lookup/service/mocks"
	"isocountry/pkg/platform/circuit"
	"isocountry/pkg/platform/sentinel"
)

type FallbackSuite struct {
	suite.Suite
	primary *mocks.MockRecordCache
	local   *InMemory
	breaker *circuit.Breaker
	cache   *Fallback
	ctx     context.Context
}

func TestFallbackSuite(t *testing.T) {
	suite.Run(t, new(FallbackSuite))
}

func (s *FallbackSuite) SetupTest() {
	s.primary = mocks.NewMockRecordCache(gomock.NewController(s.T()))
	s.local = NewInMemory()
	s.breaker = circuit.New("record-cache", circuit.WithFailureThreshold(2), circuit.WithSuccessThreshold(1))
	s.cache = NewFallback(s.primary, s.local, s.breaker, nil)
	s.ctx = context.Background()
}

func (s *FallbackSuite) record() *models.Record {
	return &models.Record{Name: "Japan", Alpha2: "JP", Alpha3: "JPN", Timezones: []string{"Asia/Tokyo"}}
}

var errDown = errors.New("dial tcp: connection refused")

func (s *FallbackSuite) TestHealthyPrimary() {
	s.primary.EXPECT().Put(gomock.Any(), gomock.Any(), time.Hour).Return(nil)
	s.primary.EXPECT().Get(gomock.Any(), "JP").Return(s.record(), nil)

	s.Require().NoError(s.cache.Put(s.ctx, s.record(), time.Hour))
	rec, err := s.cache.Get(s.ctx, "JP")
	s.Require().NoError(err)
	s.Equal("Japan", rec.Name)
	s.Equal(circuit.StateClosed, s.cache.State())
}

func (s *FallbackSuite) TestFailureBelowThresholdSurfaces() {
	s.primary.EXPECT().Get(gomock.Any(), "JP").Return(nil, errDown)

	_, err := s.cache.Get(s.ctx, "JP")
	s.Require().ErrorIs(err, errDown)
	s.Equal(circuit.StateClosed, s.cache.State())
}

func (s *FallbackSuite) TestOpenBreakerServesLocal() {
	s.primary.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(errDown).Times(2)

	s.Require().Error(s.cache.Put(s.ctx, s.record(), time.Hour))
	s.Require().NoError(s.cache.Put(s.ctx, s.record(), time.Hour))
	s.Equal(circuit.StateOpen, s.cache.State())

	s.primary.EXPECT().Get(gomock.Any(), "JP").Return(nil, errDown)
	rec, err := s.cache.Get(s.ctx, "JP")
	s.Require().NoError(err)
	s.Equal("Japan", rec.Name)
}

func (s *FallbackSuite) TestRecovery() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.Require().True(s.breaker.IsOpen())

	s.primary.EXPECT().Get(gomock.Any(), "DE").Return(nil, sentinel.ErrNotFound)
	_, err := s.cache.Get(s.ctx, "DE")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	s.Equal(circuit.StateClosed, s.cache.State())
}
