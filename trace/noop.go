// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"go.opentelemetry.io/otel/trace/noop"

	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ Tracer = (*noOpTracer)(nil)

// noOpTracer is an implementation of Tracer that does nothing.
type noOpTracer struct {
	oteltrace.Tracer
}

func NewNoOp(name string) Tracer {
	return noOpTracer{
		Tracer: noop.NewTracerProvider().Tracer(name),
	}
}

func (noOpTracer) Close() error {
	return nil
}
