package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/grafana/procprof/cli"
	"github.com/grafana/procprof/metrics"
	"github.com/grafana/procprof/profiles"
	"github.com/grafana/procprof/samples"
)

// Playground for the annotation pipeline: reads an already collected
// collapsed profile from a file, optionally folds a profiling error into
// it, and prints the result.

var input = pflag.String("input", "", "collapsed profile path, - for stdin")
var errorSpec = pflag.String("error", "", "profiling failure to attach, as what:reason:comm")
var appID = pflag.String("appid", "", "logical application id")
var containerName = pflag.String("container-name", "", "container the process ran in")

var minCount cli.NonNegativeIntValue
var topStacks = cli.NewIntRangeValue(1, 1<<16, 1000)
var pids cli.IntListValue
var outputFormats = cli.NewEnumListValue([]string{"collapsed", "summary"}, "collapsed")

var logger log.Logger

type splitLog struct {
	err  log.Logger
	rest log.Logger
}

func (s splitLog) Log(keyvals ...interface{}) error {
	if len(keyvals)%2 != 0 {
		return s.err.Log(keyvals...)
	}
	for i := 0; i < len(keyvals); i += 2 {
		if keyvals[i] == "level" {
			vv := keyvals[i+1]
			vvs, ok := vv.(fmt.Stringer)
			if ok && vvs.String() == "error" {
				return s.err.Log(keyvals...)
			}
		}
	}
	return s.rest.Log(keyvals...)
}

func main() {
	pflag.Var(&minCount, "min-count", "drop stacks sampled fewer times than this")
	pflag.Var(topStacks, "top", "keep at most this many stacks")
	pflag.Var(&pids, "pids", "comma separated pids the profile was collected from")
	pflag.Var(outputFormats, "output", "comma separated output formats")
	pflag.Parse()

	logger = &splitLog{
		err:  log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)),
		rest: log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout)),
	}
	m := metrics.New(prometheus.NewRegistry())

	stacks, err := readCollapsed(*input)
	if err != nil {
		m.ParseErrors.Inc()
		panic(fmt.Errorf("read collapsed profile: %w", err))
	}

	pd := profiles.NewProfileData(stacks, *appID, nil, *containerName)
	_ = level.Debug(logger).Log("msg", "profile loaded", "stacks", len(pd.Stacks), "samples", pd.Stacks.Total(), "pids", pids.String())

	if *errorSpec != "" {
		what, reason, comm, err := parseErrorSpec(*errorSpec)
		if err != nil {
			panic(err)
		}
		errorStack := samples.NewErrorStack(what, reason, comm)
		m.ErrorStacksBuilt.Inc()
		if len(pd.Stacks) == 0 {
			pd.SetErrorStack(what, reason, comm)
		} else if err := pd.AttachError(errorStack); err != nil {
			m.MalformedStacks.Inc()
			panic(err)
		}
		m.ProfilesAnnotated.WithLabelValues(pd.AppID).Inc()
	}

	for _, format := range outputFormats.Values {
		switch format {
		case "collapsed":
			fmt.Print(filtered(pd.Stacks).Collapsed())
		case "summary":
			_ = logger.Log("appid", pd.AppID, "container", pd.ContainerName,
				"stacks", len(pd.Stacks), "samples", pd.Stacks.Total(), "error_only", pd.IsError())
		}
	}
}

func readCollapsed(path string) (samples.StackToSampleCount, error) {
	if path == "" || path == "-" {
		return samples.ParseCollapsed(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return samples.ParseCollapsed(f)
}

func filtered(stacks samples.StackToSampleCount) samples.StackToSampleCount {
	res := samples.StackToSampleCount{}
	for key, count := range stacks {
		if count >= int(minCount) {
			res.Add(key, count)
		}
	}
	if len(res) <= topStacks.Value {
		return res
	}
	keys := lo.Keys(res)
	sort.Slice(keys, func(i, j int) bool {
		if res[keys[i]] != res[keys[j]] {
			return res[keys[i]] > res[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys[topStacks.Value:] {
		delete(res, key)
	}
	return res
}

func parseErrorSpec(spec string) (what, reason, comm string, err error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("invalid error spec %q: expected what:reason:comm", spec)
	}
	return parts[0], strings.TrimSpace(parts[1]), parts[2], nil
}
