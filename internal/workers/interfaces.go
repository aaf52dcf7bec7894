// Package workers runs the background jobs of the storefront server.
// It defines the Worker interface and a Workers aggregate that starts and
// stops every configured worker in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without waiting for its work; the work
// continues in goroutines owned by the worker. Stop ends that work and
// blocks until it has exited. Stop must be safe to call on a worker that
// was never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Run()  { /* start background processing */ }
//	func (w *MyWorker) Stop() { /* cancel and wait */ }
type Worker interface {
	Run()
	Stop()
}
