package tenant

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataroomhq/dataroom-cli/internal/errors"
	"github.com/dataroomhq/dataroom-cli/internal/platform"
)

func usageBackend(hits *atomic.Int64) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tenant/usage", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(platform.UsageResponse{
			Usage: platform.Usage{UserCount: 9},
			Limits: map[string]platform.LimitStatus{
				"users": {Current: 9, Limit: 10},
			},
		})
	})
	return mux
}

func TestRefreshUsage(t *testing.T) {
	var hits atomic.Int64
	m, _ := newTestContext(t, usageBackend(&hits), acmeAdmin())

	require.NoError(t, m.RefreshUsage(context.Background()))
	assert.Equal(t, int64(9), m.Usage().UserCount)
	assert.True(t, m.IsApproachingLimit("users", 0.8))
}

func TestRefreshUsageRequiresAdmin(t *testing.T) {
	var hits atomic.Int64
	member := &platform.User{ID: "u2", TenantID: "acme-id", TenantRole: platform.TenantRoleUser}
	m, _ := newTestContext(t, usageBackend(&hits), member)

	err := m.RefreshUsage(context.Background())
	require.Error(t, err)

	var coded *errors.Error
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, errors.ErrCodeAuthPermission, coded.Code)
	assert.Equal(t, int64(0), hits.Load(), "permission check must precede the request")
}

func TestUsageRefresherPollsAndStops(t *testing.T) {
	var hits atomic.Int64
	m, _ := newTestContext(t, usageBackend(&hits), acmeAdmin())

	stop := m.StartUsageRefresher(context.Background(), 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return hits.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	stop()
	settled := hits.Load()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, hits.Load(), settled+1, "refresher must stop polling after teardown")
}

func TestUsageRefresherStopsAfterLogout(t *testing.T) {
	var hits atomic.Int64
	m, sess := newTestContext(t, usageBackend(&hits), acmeAdmin())

	stop := m.StartUsageRefresher(context.Background(), 10*time.Millisecond)
	defer stop()

	assert.Eventually(t, func() bool {
		return hits.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	sess.Logout()
	time.Sleep(30 * time.Millisecond) // let an in-flight tick drain
	settled := hits.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, settled, hits.Load(), "no usage calls may leak after logout")
}
