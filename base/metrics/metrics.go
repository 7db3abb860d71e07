/*
Package metrics wraps datadog-go to facilitate metric recording.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/framemarket/goapi/base/log"
)

const (
	// ddRate is the rate to pass metrics to the datadog agent. 1 means always.
	ddRate = 1
	// buffer this many counters before sending to the statsd agent
	bufferMetrics = 10
)

// Ender is returned by BumpTime for closing the measured span
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

var (
	initOnce = sync.Once{}
	ddClient statsCli
)

func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		// no agent configured, fall back to debug logs
		ddClient = &logClient{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, 8125)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
	ddClient = cli
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &metrics{
		pkgName: pkgName,
		ddTags: []string{
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type metrics struct {
	pkgName string
	ddTags  []string
}

// parseTag turns ("k1", "v1", "k2", "v2") into datadog "k:v" tags
func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

// BumpSum bumps the sum for the given key.
func (mt *metrics) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if err := ddClient.Count(mt.pkgName+`.`+key, int64(val), append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *metrics) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if err := ddClient.Histogram(mt.pkgName+`.`+key, val, append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer; calling End() on the returned value records
// the duration of the span:
//
//	defer s.BumpTime("my.function").End()
func (mt *metrics) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initClient)
	return &timeTracker{
		start: time.Now(),
		key:   mt.pkgName + `.` + key,
		tags:  append(mt.ddTags, parseTag(tags)...),
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (tt *timeTracker) End() {
	d := time.Since(tt.start)
	dur := float64(d/time.Millisecond) + float64(d%time.Millisecond)*1e-6
	if err := ddClient.TimeInMilliseconds(tt.key, dur, tt.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": tt.key, "val": dur, "func": "BumpTime"}).Error("Bump fail")
	}
}
