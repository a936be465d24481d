package vaultops

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vaultlayer/vault-engine/metrics/consts"
)

type PromIndicators struct {
	vaultOperationsTotal *prometheus.CounterVec
	vaultExchangeRate    prometheus.Gauge
}

func NewPromIndicators(vaultName string, reg prometheus.Registerer) *PromIndicators {
	return &PromIndicators{
		vaultOperationsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   consts.VaultLayerPromNamespace,
				Name:        "vault_operations_total",
				Help:        "Total number of vault <operation> calls by result",
				ConstLabels: prometheus.Labels{"vault_name": vaultName},
			},
			[]string{"operation", "result"},
		),
		vaultExchangeRate: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Namespace:   consts.VaultLayerPromNamespace,
				Name:        "vault_exchange_rate",
				Help:        "Assets redeemable per share, 18-decimal fixed point",
				ConstLabels: prometheus.Labels{"vault_name": vaultName},
			},
		),
	}
}

// AddOperationTotal counts one vault operation with its result label
// ("ok" or "error").
func (p *PromIndicators) AddOperationTotal(operation, result string) {
	p.vaultOperationsTotal.With(prometheus.Labels{
		"operation": operation,
		"result":    result,
	}).Inc()
}

// SetExchangeRate records the current share price.
func (p *PromIndicators) SetExchangeRate(rate float64) {
	p.vaultExchangeRate.Set(rate)
}
