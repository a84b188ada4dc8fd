package debugging

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Invicton-Labs/go-concurrency"
	"github.com/Invicton-Labs/go-stackerr"
)

var memoryMonitorCtx context.Context = nil
var maxReserved atomic.Uint64
var maxInUse atomic.Uint64

// storeMax raises v to val if val is larger.
func storeMax(v *atomic.Uint64, val uint64) {
	for {
		old := v.Load()
		if val <= old || v.CompareAndSwap(old, val) {
			return
		}
	}
}

// SampleMemory records the current memory usage into the running maxima.
func SampleMemory() {
	mem := GetMemUsage()
	storeMax(&maxReserved, mem.Sys)
	storeMax(&maxInUse, mem.HeapInuse+mem.StackInuse)
}

// StartMemoryMonitor samples memory usage every interval until ctx is done.
// Only one monitor runs per process; later calls return the context of the
// first one.
func StartMemoryMonitor(ctx context.Context, interval time.Duration) context.Context {
	if memoryMonitorCtx != nil {
		return memoryMonitorCtx
	}
	executor := concurrency.ContinuousFinal(
		ctx, concurrency.ContinuousFinalInput{
			Name: "memory-monitor",
			Func: func(ctx context.Context, metadata *concurrency.RoutineFunctionMetadata) (err stackerr.Error) {
				SampleMemory()
				return nil
			},
		}, interval)
	memoryMonitorCtx = executor.Ctx()
	return memoryMonitorCtx
}

func GetMaxMemoryUsageMb() (maxReservedMb uint64, maxInUseMb uint64) {
	return bToMb(maxReserved.Load()), bToMb(maxInUse.Load())
}
