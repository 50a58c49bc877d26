package httptransport

import "expvar"

var (
	metricEnhanceTotal         = expvar.NewInt("enhance_total")
	metricEnhanceSuccessTotal  = expvar.NewInt("enhance_success_total")
	metricEnhanceFailureTotal  = expvar.NewInt("enhance_failure_total")
	metricEnhanceRejectedTotal = expvar.NewInt("enhance_rejected_total")

	metricChanceRollTotal = expvar.NewInt("chance_roll_total")
	metricSellTotal       = expvar.NewInt("sell_total")
	metricPurchaseTotal   = expvar.NewInt("purchase_total")
)
