package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// SetupPrometheus creates the metrics manager together with a dedicated
// HTTP server exposing the /metrics endpoint, and starts the life signal.
func SetupPrometheus(ctx context.Context, host string, port int) (*Manager, *http.Server) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	manager := NewManager("posturelab", "posturecheck", reg)

	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	server := &http.Server{
		Handler:      r,
		Addr:         fmt.Sprintf("%s:%d", host, port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		log.Debugf("starting metrics server on %s:%d ...", host, port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("metrics server error: %s", err)
		}
	}()

	go manager.lifeSignalLoop(ctx)

	return manager, server
}

func (m *Manager) lifeSignalLoop(ctx context.Context) {
	up := false
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if up {
				m.GaugeLifeSignal.Set(0)
			} else {
				m.GaugeLifeSignal.Set(1)
			}
			up = !up
		}
	}
}
