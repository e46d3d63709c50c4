// Package metrics exposes HTTP request metrics for Prometheus. The exporter
// listens on its own address so the scrape endpoint stays off the public API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultMetricPath = "/metrics"

// Logger is the minimal logging surface the exporter needs.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

type Prometheus struct {
	reqCnt     *prometheus.CounterVec
	reqDur     *prometheus.HistogramVec
	listenAddr string
	urlLabelFn func(c *gin.Context) string
	log        Logger
}

type NewPrometheusOptions struct {
	// ReqCntURLLabelMappingFn maps a request to its url label. Use the route
	// template here, not the raw path, to keep cardinality bounded.
	ReqCntURLLabelMappingFn func(c *gin.Context) string
	Logger                  Logger
}

func NewPrometheus(opts NewPrometheusOptions) *Prometheus {
	p := &Prometheus{
		urlLabelFn: opts.ReqCntURLLabelMappingFn,
		log:        opts.Logger,
	}
	if p.urlLabelFn == nil {
		p.urlLabelFn = func(c *gin.Context) string { return c.Request.URL.Path }
	}

	p.reqCnt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "req_total",
		Help: "How many HTTP requests processed, partitioned by status code, method and url.",
	}, []string{"code", "method", "url"})
	p.reqDur = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "req_dur_ms",
		Help: "The HTTP request latencies in milliseconds.",
	}, []string{"code", "method", "url"})

	for _, c := range []prometheus.Collector{p.reqCnt, p.reqDur} {
		if err := prometheus.Register(c); err != nil {
			if p.log != nil {
				p.log.Errorf("metrics: register failed: %v", err)
			}
		}
	}
	return p
}

// SetListenAddress makes the exporter serve /metrics on its own listener
// instead of the instrumented engine.
func (p *Prometheus) SetListenAddress(addr string) {
	p.listenAddr = addr
}

// Use attaches the middleware to e and starts the exporter listener when one
// was configured.
func (p *Prometheus) Use(e *gin.Engine) {
	e.Use(p.handlerFunc())
	if p.listenAddr != "" {
		mux := http.NewServeMux()
		mux.Handle(defaultMetricPath, promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(p.listenAddr, mux); err != nil {
				if p.log != nil {
					p.log.Errorf("metrics: listener error: %v", err)
				}
			}
		}()
	} else {
		e.GET(defaultMetricPath, gin.WrapH(promhttp.Handler()))
	}
}

func (p *Prometheus) handlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == defaultMetricPath {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		code := strconv.Itoa(c.Writer.Status())
		url := p.urlLabelFn(c)
		p.reqCnt.WithLabelValues(code, c.Request.Method, url).Inc()
		p.reqDur.WithLabelValues(code, c.Request.Method, url).
			Observe(float64(time.Since(start).Milliseconds()))
	}
}
