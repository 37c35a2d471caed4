package stats

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BufferMetrics interface {
		ObserveSize(n int)
		ObservePruned(n int)
		ObserveMalformedTimestamp()
	}
)
