package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tweet_relay/internal/domain"
	"tweet_relay/internal/service/mocks"
	"tweet_relay/internal/source/twitter"
)

const testChannel = "chan-1"

type RelayServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	timeline  *mocks.MockTimeline
	deliverer *mocks.MockDeliverer
	cursors   *mocks.MockCursorStore

	logger *slog.Logger

	alpha domain.Account
	beta  domain.Account
}

func (s *RelayServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.timeline = mocks.NewMockTimeline(s.ctrl)
	s.deliverer = mocks.NewMockDeliverer(s.ctrl)
	s.cursors = mocks.NewMockCursorStore(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.alpha = domain.Account{ID: "1", Handle: "alpha", DisplayName: "Alpha", AvatarURL: "https://img/alpha.png"}
	s.beta = domain.Account{ID: "2", Handle: "beta", DisplayName: "Beta", AvatarURL: "https://img/beta.png"}

	s.deliverer.EXPECT().ChannelID().Return(testChannel).AnyTimes()
}

func (s *RelayServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRelayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RelayServiceTestSuite))
}

func (s *RelayServiceTestSuite) newService(pageSize int, accounts ...domain.Account) *RelayService {
	return NewRelayService(s.timeline, s.deliverer, s.cursors, accounts, pageSize, s.logger)
}

func tweetMessage(account domain.Account, id string) domain.Message {
	return domain.Message{
		Text:        fmt.Sprintf("https://twitter.com/%s/status/%s", account.Handle, id),
		DisplayName: account.DisplayName,
		AvatarURL:   account.AvatarURL,
	}
}

func (s *RelayServiceTestSuite) TestTick_OrdersDeliveriesAcrossAccounts() {
	ctx := context.Background()
	service := s.newService(10, s.alpha, s.beta)

	// since_id filtering is exclusive: pages contain only tweets strictly
	// newer than the cursor.
	s.cursors.EXPECT().Get(ctx, testChannel, "1").Return("100", true, nil)
	s.timeline.EXPECT().FetchTimeline(ctx, s.alpha, "100", 10).Return(
		[]domain.Tweet{{ID: "200", Account: s.alpha}}, nil)

	s.cursors.EXPECT().Get(ctx, testChannel, "2").Return("100", true, nil)
	s.timeline.EXPECT().FetchTimeline(ctx, s.beta, "100", 10).Return(
		[]domain.Tweet{{ID: "150", Account: s.beta}}, nil)

	// Beta's tweet has the smaller id, so it must arrive first even though
	// alpha was polled first.
	gomock.InOrder(
		s.deliverer.EXPECT().Deliver(ctx, tweetMessage(s.beta, "150")).Return(nil),
		s.deliverer.EXPECT().Deliver(ctx, tweetMessage(s.alpha, "200")).Return(nil),
	)

	s.cursors.EXPECT().UpsertBatch(ctx, []domain.Cursor{
		{ChannelID: testChannel, AccountID: "1", LastTweetID: "200"},
		{ChannelID: testChannel, AccountID: "2", LastTweetID: "150"},
	}).Return(nil)

	stats, err := service.Tick(ctx)

	s.NoError(err)
	s.Equal(2, stats.Accounts)
	s.Equal(2, stats.Fetched)
	s.Equal(2, stats.New)
	s.Equal(0, stats.Overflowed)
}

func (s *RelayServiceTestSuite) TestTick_FirstRunDeliversNothing() {
	ctx := context.Background()
	service := s.newService(10, s.alpha)

	s.cursors.EXPECT().Get(ctx, testChannel, "1").Return("", false, nil)
	s.timeline.EXPECT().FetchTimeline(ctx, s.alpha, "", 10).Return(
		[]domain.Tweet{{ID: "55", Account: s.alpha}, {ID: "54", Account: s.alpha}}, nil)

	s.cursors.EXPECT().UpsertBatch(ctx, []domain.Cursor{
		{ChannelID: testChannel, AccountID: "1", LastTweetID: "55"},
	}).Return(nil)

	stats, err := service.Tick(ctx)

	s.NoError(err)
	s.Equal(2, stats.Fetched)
	s.Equal(0, stats.New)
	s.Equal(0, stats.Delivered)
}

func (s *RelayServiceTestSuite) TestTick_SingleNewTweetSendsNoOverflowNotice() {
	ctx := context.Background()
	service := s.newService(10, s.alpha)

	s.cursors.EXPECT().Get(ctx, testChannel, "1").Return("200", true, nil)
	s.timeline.EXPECT().FetchTimeline(ctx, s.alpha, "200", 10).Return(
		[]domain.Tweet{{ID: "201", Account: s.alpha}}, nil)

	// Exactly one delivery: the tweet itself. A one-item page with room to
	// spare misses nothing, so no notice goes to the channel.
	s.deliverer.EXPECT().Deliver(ctx, tweetMessage(s.alpha, "201")).Return(nil)

	s.cursors.EXPECT().UpsertBatch(ctx, []domain.Cursor{
		{ChannelID: testChannel, AccountID: "1", LastTweetID: "201"},
	}).Return(nil)

	stats, err := service.Tick(ctx)

	s.NoError(err)
	s.Equal(1, stats.New)
	s.Equal(0, stats.Overflowed)
	s.Equal(1, stats.Delivered)
}

func (s *RelayServiceTestSuite) TestTick_EmptyPageSkipsAccount() {
	ctx := context.Background()
	service := s.newService(10, s.alpha)

	s.cursors.EXPECT().Get(ctx, testChannel, "1").Return("100", true, nil)
	s.timeline.EXPECT().FetchTimeline(ctx, s.alpha, "100", 10).Return(nil, nil)

	stats, err := service.Tick(ctx)

	s.NoError(err)
	s.Equal(0, stats.Fetched)
	s.Equal(0, stats.New)
}

func (s *RelayServiceTestSuite) TestTick_OverflowNoticePrecedesTweets() {
	ctx := context.Background()
	service := s.newService(3, s.alpha)

	s.cursors.EXPECT().Get(ctx, testChannel, "1").Return("100", true, nil)
	s.timeline.EXPECT().FetchTimeline(ctx, s.alpha, "100", 3).Return(
		[]domain.Tweet{
			{ID: "105", Account: s.alpha},
			{ID: "104", Account: s.alpha},
			{ID: "103", Account: s.alpha},
		}, nil)

	notice := domain.Message{
		Text:        "@alpha posted more than 3 tweets since the last check; only the 3 most recent are shown.",
		DisplayName: s.alpha.DisplayName,
		AvatarURL:   s.alpha.AvatarURL,
	}

	gomock.InOrder(
		s.deliverer.EXPECT().Deliver(ctx, notice).Return(nil),
		s.deliverer.EXPECT().Deliver(ctx, tweetMessage(s.alpha, "103")).Return(nil),
		s.deliverer.EXPECT().Deliver(ctx, tweetMessage(s.alpha, "104")).Return(nil),
		s.deliverer.EXPECT().Deliver(ctx, tweetMessage(s.alpha, "105")).Return(nil),
	)

	s.cursors.EXPECT().UpsertBatch(ctx, []domain.Cursor{
		{ChannelID: testChannel, AccountID: "1", LastTweetID: "105"},
	}).Return(nil)

	stats, err := service.Tick(ctx)

	s.NoError(err)
	s.Equal(1, stats.Overflowed)
	s.Equal(3, stats.New)
	s.Equal(4, stats.Delivered)
}

func (s *RelayServiceTestSuite) TestTick_UnavailableAbortsWholeTick() {
	ctx := context.Background()
	service := s.newService(10, s.alpha, s.beta)

	// Alpha has new tweets, but the tick must abort before any delivery or
	// cursor write once beta's fetch fails.
	s.cursors.EXPECT().Get(ctx, testChannel, "1").Return("100", true, nil)
	s.timeline.EXPECT().FetchTimeline(ctx, s.alpha, "100", 10).Return(
		[]domain.Tweet{{ID: "200", Account: s.alpha}}, nil)

	s.cursors.EXPECT().Get(ctx, testChannel, "2").Return("100", true, nil)
	s.timeline.EXPECT().FetchTimeline(ctx, s.beta, "100", 10).Return(
		nil, fmt.Errorf("status 503: %w", twitter.ErrUnavailable))

	stats, err := service.Tick(ctx)

	s.Error(err)
	s.Nil(stats)
	s.ErrorIs(err, twitter.ErrUnavailable)
}

func (s *RelayServiceTestSuite) TestTick_DeliveryErrorPropagates() {
	ctx := context.Background()
	service := s.newService(10, s.alpha)

	s.cursors.EXPECT().Get(ctx, testChannel, "1").Return("100", true, nil)
	s.timeline.EXPECT().FetchTimeline(ctx, s.alpha, "100", 10).Return(
		[]domain.Tweet{{ID: "200", Account: s.alpha}}, nil)

	s.deliverer.EXPECT().Deliver(ctx, tweetMessage(s.alpha, "200")).Return(errors.New("webhook gone"))

	stats, err := service.Tick(ctx)

	s.Error(err)
	s.Nil(stats)
	s.NotErrorIs(err, twitter.ErrUnavailable)
}

func (s *RelayServiceTestSuite) TestTick_CursorReadErrorAborts() {
	ctx := context.Background()
	service := s.newService(10, s.alpha)

	s.cursors.EXPECT().Get(ctx, testChannel, "1").Return("", false, errors.New("database is locked"))

	stats, err := service.Tick(ctx)

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "get cursor")
}
