package charclass

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// bufferPool hands out scratch buffers for bracket expressions. Buffers are
// reset when they are returned.
type bufferPool struct {
	ctx     context.Context
	buffers *pool.ObjectPool
}

var renderBuffers = newBufferPool(context.Background())

func newBufferPool(ctx context.Context) *bufferPool {
	factory := pool.NewPooledObjectFactory(
		func(context.Context) (interface{}, error) {
			return new(bytes.Buffer), nil
		},
		nil, // destroy
		nil, // validate
		nil, // activate
		func(_ context.Context, o *pool.PooledObject) error {
			o.Object.(*bytes.Buffer).Reset()
			return nil
		},
	)
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1
	config.BlockWhenExhausted = false
	return &bufferPool{ctx: ctx, buffers: pool.NewObjectPool(ctx, factory, config)}
}

// borrow returns an empty buffer. If the pool fails, a fresh buffer is
// returned instead.
func (bp *bufferPool) borrow() *bytes.Buffer {
	o, err := bp.buffers.BorrowObject(bp.ctx)
	if err != nil {
		T().Errorf("cannot borrow render buffer: %v", err)
		return new(bytes.Buffer)
	}
	return o.(*bytes.Buffer)
}

// release puts buf back. Its bytes must not be referenced afterwards.
func (bp *bufferPool) release(buf *bytes.Buffer) {
	if err := bp.buffers.ReturnObject(bp.ctx, buf); err != nil {
		T().Debugf("render buffer not returned to pool: %v", err)
	}
}
