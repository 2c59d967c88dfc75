package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	r := prometheus.NewRegistry()
	Register(r)
	// 重复注册不会 panic。
	Register(r)

	assert.Equal(t, prometheus.Registerer(r), GetRegisterer())

	SysMsgParamCountCorrections.WithLabelValues("1983").Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(SysMsgParamCountCorrections.WithLabelValues("1983")))

	n, err := testutil.GatherAndCount(r, "gameserver_sysmsg_param_count_corrections_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
