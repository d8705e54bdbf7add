// Package bitar binds the configuration snapshot to the locale-aware helpers and
// carries logging and tracing facilities through context.
//
// Most helpers live in subpackages (str, num, arr, obj, date, prom) and are pure
// functions. Formatting helpers need defaults such as the locale and the currency;
// a Bitar instance owns those defaults and hands out formatters bound to the current
// snapshot:
//
//	b, err := bitar.New(
//	    bitar.WithConfigFile("bitar.toml"),
//	    bitar.WithEnv(".env"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	b.Num().Currency(30) // "$30.00"
//
// Package-level Configure, Num and Date use a shared default instance.
//
// Context helpers mirror the usual service ingress setup:
//
//	ctx = bitar.ContextWithLogger(ctx, logger)
//	ctx = bitar.ContextWithTracer(ctx, tracer)
//	ctx = bitar.ContextWithHeaderID(ctx, requestID)
package bitar
