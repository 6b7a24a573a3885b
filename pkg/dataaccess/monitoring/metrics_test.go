package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestTrackMongo(t *testing.T) {
	before := testutil.ToFloat64(MongoTotalRequests.WithLabelValues("test", "find", "db", "coll"))

	done := TrackMongo("test", "find", "db", "coll")
	done()

	require.Equal(t, before+1, testutil.ToFloat64(MongoTotalRequests.WithLabelValues("test", "find", "db", "coll")))
}

func TestTrackRedis(t *testing.T) {
	before := testutil.ToFloat64(RedisTotalRequests.WithLabelValues("test", "get"))

	TrackRedis("test", "get")()

	require.Equal(t, before+1, testutil.ToFloat64(RedisTotalRequests.WithLabelValues("test", "get")))
}
