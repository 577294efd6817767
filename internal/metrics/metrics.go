// Package metrics exposes the Prometheus collectors for the draw service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatMessages = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "giveaway",
		Name:      "chat_messages_total",
		Help:      "Parsed channel messages received from chat.",
	})

	JoinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "giveaway",
		Name:      "joins_total",
		Help:      "Qualifying join commands recorded into the roster.",
	})

	ParticipantsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "giveaway",
		Name:      "participants_active",
		Help:      "Non-eliminated participants in the roster.",
	})

	DrawsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "giveaway",
		Name:      "draws_started_total",
		Help:      "Draws started by the operator or by automatic reroll.",
	})

	DrawsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "giveaway",
		Name:      "draws_completed_total",
		Help:      "Draws that reached the finished phase.",
	})

	DrawsDisqualified = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "giveaway",
		Name:      "draws_disqualified_total",
		Help:      "Winners disqualified for missing the confirmation deadline.",
	})

	CatalogFetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "giveaway",
		Name:      "catalog_fetch_errors_total",
		Help:      "Failed prize catalog refreshes.",
	})
)
