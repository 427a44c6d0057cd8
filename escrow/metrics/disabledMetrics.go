package metrics

import (
	"net/http"

	"github.com/klever-io/mx-gig-escrow-go/escrow"
)

type disabledMetrics struct{}

// NewDisabledMetrics returns a metrics handler which records nothing
func NewDisabledMetrics() *disabledMetrics {
	return &disabledMetrics{}
}

// ObserveOperation does nothing
func (dm *disabledMetrics) ObserveOperation(_ escrow.Action, _ string, _ float64) {}

// ObserveConnect does nothing
func (dm *disabledMetrics) ObserveConnect(_ escrow.ConnectStatus) {}

// ObserveHTTPRequest does nothing
func (dm *disabledMetrics) ObserveHTTPRequest(_ string, _ string, _ int) {}

// Handler answers every request with 404
func (dm *disabledMetrics) Handler() http.Handler {
	return http.NotFoundHandler()
}

// IsInterfaceNil returns true if there is no value under the interface
func (dm *disabledMetrics) IsInterfaceNil() bool {
	return dm == nil
}
