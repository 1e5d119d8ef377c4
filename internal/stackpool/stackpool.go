/*
Package stackpool recycles the work stacks of the evaluation pipeline.

Converting and evaluating expressions allocates short-lived stacks, one per
call. To avoid multiple allocation of small objects we pool them. Stacks
handed out by Borrow are always empty; clients must not keep a reference
to a stack after calling Release.
*/
package stackpool

import (
	"context"

	"github.com/emirpasic/gods/stacks/arraystack"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

type stackPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalStackPool *stackPool

func init() {
	globalStackPool = &stackPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return arraystack.New(), nil
		})
	globalStackPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalStackPool.opool = pool.NewObjectPool(globalStackPool.ctx, factory, config)
}

// Borrow returns an empty stack from the pool.
func Borrow() *arraystack.Stack {
	o, err := globalStackPool.opool.BorrowObject(globalStackPool.ctx)
	if err != nil {
		T().Errorf("cannot borrow stack from pool: %v", err)
		return arraystack.New()
	}
	s := o.(*arraystack.Stack)
	if !s.Empty() { // should never happen
		s.Clear()
	}
	return s
}

// Release clears a stack and puts it back into the pool.
func Release(s *arraystack.Stack) {
	if s == nil {
		return
	}
	s.Clear()
	_ = globalStackPool.opool.ReturnObject(globalStackPool.ctx, s)
}

// Active returns the number of stacks currently borrowed.
func Active() int {
	return globalStackPool.opool.GetNumActive()
}
