package simulation

import "sync"

// Task is one unit of simulated node work.
type Task func()

// Pool runs node executions concurrently, one goroutine per simulated
// worker slot.
type Pool struct {
	numWorkers int
	tasks      chan Task
	wg         sync.WaitGroup
}

func NewPool(numWorkers int) *Pool {
	return &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan Task, numWorkers),
	}
}

func (p *Pool) Start() {
	for range p.numWorkers {
		p.wg.Go(func() {
			for task := range p.tasks {
				task()
			}
		})
	}
}

func (p *Pool) Submit(task Task) {
	p.tasks <- task
}

func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
