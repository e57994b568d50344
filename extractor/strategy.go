package extractor

//go:generate go tool stringer -type=Strategy -trimprefix=Strategy -output=strategy_string.go

// Strategy identifies the step of the type inference pipeline that produced a result.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyMutator
	StrategyAccessor
	StrategyConstructor
	StrategyDefaultValue
)
