package mock

import "github.com/klever-io/mx-gig-escrow-go/escrow"

// MetricsHandlerStub -
type MetricsHandlerStub struct {
	ObserveOperationCalled func(action escrow.Action, outcome string, durationInSeconds float64)
	ObserveConnectCalled   func(status escrow.ConnectStatus)
}

// ObserveOperation -
func (stub *MetricsHandlerStub) ObserveOperation(action escrow.Action, outcome string, durationInSeconds float64) {
	if stub.ObserveOperationCalled != nil {
		stub.ObserveOperationCalled(action, outcome, durationInSeconds)
	}
}

// ObserveConnect -
func (stub *MetricsHandlerStub) ObserveConnect(status escrow.ConnectStatus) {
	if stub.ObserveConnectCalled != nil {
		stub.ObserveConnectCalled(status)
	}
}

// IsInterfaceNil -
func (stub *MetricsHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
