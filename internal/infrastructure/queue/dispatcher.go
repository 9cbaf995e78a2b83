package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/sbcommerce/storefront-system/internal/api/metrics"
	"github.com/sbcommerce/storefront-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes placed orders to a fixed set of workers using
// consistent hashing on the order id, guaranteeing each order is only
// ever processed by one worker and retries stay ordered.
type Dispatcher struct {
	workers []chan string
	service ports.OrderService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.OrderService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan string, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an order id to the worker responsible for it. The call
// never blocks: when the worker's buffer is full the id is dropped and
// the order stays pending until it is requeued.
func (d *Dispatcher) Enqueue(orderID string) {
	i := d.shardIndex(orderID)
	select {
	case d.workers[i] <- orderID:
		metrics.OrderQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.OrdersErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Error().
			Str("order_id", orderID).
			Int("worker_id", i).
			Msg("worker queue full, order left pending")
	}
}

// shardIndex maps an order id deterministically to a worker index.
func (d *Dispatcher) shardIndex(orderID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(orderID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case orderID, ok := <-ch:
			if !ok {
				return
			}
			metrics.OrderQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))

			start := time.Now()
			if err := d.service.Process(ctx, orderID); err != nil {
				metrics.OrdersErrorsTotal.WithLabelValues("process_failed").Inc()
				d.log.Error().Err(err).
					Str("order_id", orderID).
					Int("worker_id", id).
					Msg("order processing failed")
				continue
			}
			metrics.OrdersProcessedTotal.Inc()
			metrics.OrderProcessingDuration.Observe(time.Since(start).Seconds())
		}
	}
}
