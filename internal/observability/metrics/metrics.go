package metrics

import "github.com/prometheus/client_golang/prometheus"

// ClinicMetrics exposes counters for the chat, triage and booking flows.
type ClinicMetrics struct {
	chatTurnsTotal   *prometheus.CounterVec
	assessmentsTotal *prometheus.CounterVec
	bookingsTotal    *prometheus.CounterVec
	emailsTotal      *prometheus.CounterVec
}

func NewClinicMetrics(reg prometheus.Registerer) *ClinicMetrics {
	m := &ClinicMetrics{
		chatTurnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wellness",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Total chat turns handled, by responder source",
		}, []string{"source"}),
		assessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wellness",
			Subsystem: "triage",
			Name:      "assessments_total",
			Help:      "Total health assessments recorded",
		}, []string{"category", "urgent"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wellness",
			Subsystem: "bookings",
			Name:      "created_total",
			Help:      "Total bookings created",
		}, []string{"service"}),
		emailsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wellness",
			Subsystem: "notify",
			Name:      "emails_total",
			Help:      "Total confirmation emails attempted",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.chatTurnsTotal, m.assessmentsTotal, m.bookingsTotal, m.emailsTotal)
	return m
}

func (m *ClinicMetrics) ObserveChatTurn(source string) {
	if m == nil {
		return
	}
	m.chatTurnsTotal.WithLabelValues(source).Inc()
}

func (m *ClinicMetrics) ObserveAssessment(category string, urgent bool) {
	if m == nil {
		return
	}
	label := "false"
	if urgent {
		label = "true"
	}
	m.assessmentsTotal.WithLabelValues(category, label).Inc()
}

func (m *ClinicMetrics) ObserveBooking(service string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(service).Inc()
}

func (m *ClinicMetrics) ObserveEmail(status string) {
	if m == nil {
		return
	}
	m.emailsTotal.WithLabelValues(status).Inc()
}
