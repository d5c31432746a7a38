package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa os coletores do serviço. Um *Metrics nil é válido
// e ignora todas as chamadas.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	bookings     *prometheus.CounterVec
	reaperRuns   *prometheus.CounterVec
	reaped       prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber_turnos",
			Name:      "http_requests_total",
			Help:      "Requisições HTTP por rota, método e status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "barber_turnos",
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber_turnos",
			Name:      "bookings_total",
			Help:      "Tentativas de reserva por resultado.",
		}, []string{"outcome"}),
		reaperRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber_turnos",
			Name:      "reaper_runs_total",
			Help:      "Execuções do reaper por resultado.",
		}, []string{"outcome"}),
		reaped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "barber_turnos",
			Name:      "reaped_reservations_total",
			Help:      "Reservas antigas apagadas pelo reaper.",
		}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.bookings, m.reaperRuns, m.reaped)
	return m
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Booking registra o resultado de uma reserva: "created" ou o código do erro.
func (m *Metrics) Booking(outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ReaperRun(outcome string, deleted int64) {
	if m == nil {
		return
	}
	m.reaperRuns.WithLabelValues(outcome).Inc()
	if deleted > 0 {
		m.reaped.Add(float64(deleted))
	}
}
