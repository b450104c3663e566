package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AMMMetrics holds all Prometheus metrics for the amm module
type AMMMetrics struct {
	PlatformInitialized prometheus.Counter
	PauseTotal          prometheus.Counter
	ResumeTotal         prometheus.Counter
	PairsCreated        prometheus.Counter
	LiquidityAdds       prometheus.Counter
	LiquidityRemovals   prometheus.Counter
	SwapsTotal          prometheus.Counter
	SwapVolume          prometheus.Counter
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *AMMMetrics
)

// NewAMMMetrics creates and registers amm metrics (singleton pattern)
func NewAMMMetrics() *AMMMetrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &AMMMetrics{
			PlatformInitialized: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "mojo",
					Subsystem: "amm",
					Name:      "platform_initializations_total",
					Help:      "Platform initialization events",
				},
			),
			PauseTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "mojo",
					Subsystem: "amm",
					Name:      "pauses_total",
					Help:      "Total platform pause events",
				},
			),
			ResumeTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "mojo",
					Subsystem: "amm",
					Name:      "resumes_total",
					Help:      "Total platform resume events",
				},
			),
			PairsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "mojo",
					Subsystem: "amm",
					Name:      "pairs_created_total",
					Help:      "Total number of pairs created",
				},
			),
			LiquidityAdds: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "mojo",
					Subsystem: "amm",
					Name:      "liquidity_adds_total",
					Help:      "Total liquidity deposits",
				},
			),
			LiquidityRemovals: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "mojo",
					Subsystem: "amm",
					Name:      "liquidity_removals_total",
					Help:      "Total liquidity withdrawals",
				},
			),
			SwapsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "mojo",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
			),
			SwapVolume: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "mojo",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in raw units",
				},
			),
		}
	})
	return ammMetrics
}

// GetMetrics returns the singleton amm metrics instance
func GetMetrics() *AMMMetrics {
	if ammMetrics == nil {
		return NewAMMMetrics()
	}
	return ammMetrics
}

// ObserveSwap records one executed swap and its input volume.
func (m *AMMMetrics) ObserveSwap(amountIn math.Int) {
	m.SwapsTotal.Inc()
	f, _ := new(big.Float).SetInt(amountIn.BigInt()).Float64()
	m.SwapVolume.Add(f)
}
