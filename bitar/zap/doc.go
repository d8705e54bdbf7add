// Package zap adapts go.uber.org/zap to the bitar log.Logger interface.
package zap
