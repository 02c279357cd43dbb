package renderer

import (
	"context"
	"runtime"
	"sync"
	"time"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       *Tile
	TaskID     int            // For deterministic ordering
	PixelStats [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID     int
	WorkerID   int
	Samples    int
	RenderTime time.Duration
	Error      error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	ctx         context.Context
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks sizes the queues so that submitting a whole frame never blocks.
func NewWorkerPool(ctx context.Context, raytracer *Raytracer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		ctx:         ctx,
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(wp.ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		result := TileResult{TaskID: task.TaskID, WorkerID: w.ID}

		// Skip remaining tiles once the render is cancelled
		if err := ctx.Err(); err != nil {
			result.Error = err
			w.resultQueue <- result
			continue
		}

		// Each tile has non-overlapping bounds, so writing the shared array is safe
		start := time.Now()
		result.Samples = w.raytracer.RenderBounds(task.Tile.Bounds, task.PixelStats, task.Tile.Sampler)
		result.RenderTime = time.Since(start)

		w.resultQueue <- result
	}
}
