package feed_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wearecars/internal/domains/dashboard/feed"
	dashboardMocks "wearecars/internal/domains/dashboard/mocks"
	"wearecars/internal/domains/dashboard/model/dto"
	cacheMocks "wearecars/shared/cache/mocks"
	"wearecars/shared/constant"
)

func dialHub(t *testing.T, hub *feed.Hub) (*websocket.Conn, func()) {
	t.Helper()

	srv := httptest.NewServer(hub)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestHub_PushesSnapshotOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboard := dashboardMocks.NewMockDashboard(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	events := make(chan string)

	mockCache.EXPECT().
		Subscribe(gomock.Any(), constant.ChannelBookingsChanged).
		Return((<-chan string)(events), func() {})

	summary := dto.SummaryResponse{TotalBookings: 3, ActiveBookings: 3, TotalIncome: "600.00"}

	mockDashboard.EXPECT().
		Summary(gomock.Any()).
		Return(summary, nil).
		AnyTimes()

	hub := feed.New(mockDashboard, mockCache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx)

	conn, teardown := dialHub(t, hub)
	defer teardown()

	var initial dto.SummaryResponse
	assert.NoError(t, conn.ReadJSON(&initial))
	assert.Equal(t, summary, initial)

	assert.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	events <- "booking-id-123"

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))

	var pushed dto.SummaryResponse
	assert.NoError(t, conn.ReadJSON(&pushed))
	assert.Equal(t, summary, pushed)
}

func TestHub_UnregistersOnClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboard := dashboardMocks.NewMockDashboard(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockDashboard.EXPECT().
		Summary(gomock.Any()).
		Return(dto.SummaryResponse{}, nil).
		AnyTimes()

	hub := feed.New(mockDashboard, mockCache)

	conn, teardown := dialHub(t, hub)
	defer teardown()

	var initial dto.SummaryResponse
	assert.NoError(t, conn.ReadJSON(&initial))

	assert.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()

	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)
}
