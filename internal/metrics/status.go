// Package metrics holds Prometheus collectors for the explorer components.
package metrics

const (
	namespace = "blockpulse"

	statusSuccess = "success"
	statusError   = "error"
)

func statusOf(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}
