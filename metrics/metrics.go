package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	ErrorStacksBuilt  prometheus.Counter
	ProfilesAnnotated *prometheus.CounterVec
	MalformedStacks   prometheus.Counter
	ParseErrors       prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	res := &Metrics{
		ErrorStacksBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "procprof_error_stacks_built_total",
			Help: "Total number of synthetic error stacks constructed for failed profiling stages",
		}),
		ProfilesAnnotated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "procprof_profiles_annotated_total",
			Help: "Total number of profiles that had an error frame folded into their stacks",
		}, []string{"appid"}),
		MalformedStacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "procprof_malformed_stacks_total",
			Help: "Total number of stack keys rejected during error annotation for missing frames",
		}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "procprof_collapsed_parse_errors_total",
			Help: "Total number of collapsed profile inputs that failed to parse",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			res.ErrorStacksBuilt,
			res.ProfilesAnnotated,
			res.MalformedStacks,
			res.ParseErrors,
		)
	}
	return res
}
