// SPDX-License-Identifier: MIT
package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/armaan-choudhary/zola/metrics"
)

func TestObserveBuild(t *testing.T) {
	series := metrics.ConstellationBuildsTotal.WithLabelValues("cap1")
	builds := testutil.ToFloat64(series)
	repairs := testutil.ToFloat64(metrics.ConstellationRepairEdgesTotal)

	metrics.ObserveBuild("cap1", 2, time.Millisecond)
	metrics.ObserveBuild("cap1", 0, time.Millisecond)

	assert.Equal(t, builds+2, testutil.ToFloat64(series))
	assert.Equal(t, repairs+2, testutil.ToFloat64(metrics.ConstellationRepairEdgesTotal))
}

func TestStarsAddedRegistered(t *testing.T) {
	before := testutil.ToFloat64(metrics.StarsAddedTotal)
	metrics.StarsAddedTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.StarsAddedTotal))
}

func TestBuildSecondsObserved(t *testing.T) {
	metrics.ObserveBuild("classic", 0, time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.ConstellationBuildSeconds))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.ConstellationBuildsTotal), 1)
}
