// Package service provides the verb registry the shell dispatches through.
//
// Providers describe the verbs they serve through Definition and run them
// through Execute. The registry owns the verb table, checks operand counts
// before a provider is called and wraps every call in the registered
// middleware chain.
//
// Components:
//   - Registry: verb table and dispatch
//   - Provider: interface for command implementations
//   - Middleware: cross-cutting wrappers (metrics, logging)
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(filesystem.NewProvider(engine, codecs))
//	registry.Use(metrics.Middleware())
//	err := registry.Execute(ctx, cmd, sess)
package service
