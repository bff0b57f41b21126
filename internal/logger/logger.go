package logger

import "go.uber.org/zap"

// New returns a JSON production logger when production is set and a
// console development logger otherwise.
func New(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
