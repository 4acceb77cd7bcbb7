package series

import (
	"fmt"
	"runtime"

	"github.com/mazzegi/isoweek/errorx"
	"github.com/mazzegi/isoweek/slicesx"
	"github.com/mazzegi/log"
	"golang.org/x/sync/errgroup"
)

// Converter applies an element-wise conversion to a series. Inputs longer than ChunkSize are split into
// chunks which are converted by at most Workers goroutines. The output always keeps the input order.
type Converter struct {
	Workers   int
	ChunkSize int
}

var DefaultConverter = Converter{
	Workers:   runtime.GOMAXPROCS(0),
	ChunkSize: 4096,
}

func (c Converter) normalized() Converter {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.ChunkSize < 1 {
		c.ChunkSize = DefaultConverter.ChunkSize
	}
	return c
}

type chunkResult[V any] struct {
	values []V
	errs   map[int]error
}

// convert maps ts with conv. Failed elements are reported together, one error per position.
func convert[T, V any](c Converter, ts []T, conv func(T) (V, error)) ([]V, error) {
	c = c.normalized()
	if len(ts) == 0 {
		return []V{}, nil
	}
	chunks := slicesx.Chunks(ts, c.ChunkSize)
	results := make([]chunkResult[V], len(chunks))
	if len(chunks) == 1 {
		vs, errs := slicesx.MapErr(chunks[0], conv)
		results[0] = chunkResult[V]{values: vs, errs: errs}
	} else {
		log.Debugf("series: convert %d elements in %d chunks on %d workers", len(ts), len(chunks), c.Workers)
		var g errgroup.Group
		g.SetLimit(c.Workers)
		for i, chunk := range chunks {
			g.Go(func() error {
				vs, errs := slicesx.MapErr(chunk, conv)
				results[i] = chunkResult[V]{values: vs, errs: errs}
				return nil
			})
		}
		// element failures are collected in results, workers only report their own faults
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("series: convert: %w", err)
		}
	}

	vs := make([]V, 0, len(ts))
	eg := errorx.NewGroup()
	for i, r := range results {
		base := i * c.ChunkSize
		for j := range r.values {
			if err, ok := r.errs[j]; ok {
				eg.Append(fmt.Errorf("series[%d]: %w", base+j, err))
			}
		}
		vs = append(vs, r.values...)
	}
	if !eg.IsEmpty() {
		log.Debugf("series: %d of %d elements failed", eg.Len(), len(ts))
		return nil, eg.Error()
	}
	return vs, nil
}

// mapAll is convert for conversions that cannot fail.
func mapAll[T, V any](c Converter, ts []T, conv func(T) V) []V {
	vs, err := convert(c, ts, func(t T) (V, error) {
		return conv(t), nil
	})
	if err != nil {
		panic(fmt.Sprintf("series: conversion without failures failed: %v", err))
	}
	return vs
}
