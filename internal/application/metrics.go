package application

import "expvar"

// MetricsName is the expvar map holding service counters.
const MetricsName = "growth_sessions"

var metrics = expvar.NewMap(MetricsName)

func count(name string) { metrics.Add(name, 1) }
