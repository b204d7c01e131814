// Package notification delivers "funds received" messages to payees after a
// transfer commits. Delivery is asynchronous, retried on a backoff schedule
// and entirely decoupled from the transfer's outcome: an exhausted task is
// logged and dropped, never propagated back.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"paymo/internal/models"
)

const defaultQueueSize = 1024

// Task is one queued payee notification. Attempt is 1-based.
type Task struct {
	PayeeID    uint
	TransferID uint
	Attempt    int
}

// Policy bounds the retry behavior of the dispatcher.
type Policy struct {
	MaxAttempts    int
	Backoff        []time.Duration
	AttemptTimeout time.Duration
}

// DefaultPolicy returns three attempts with growing delays and a hard
// per-attempt cap.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    3,
		Backoff:        []time.Duration{5 * time.Second, 15 * time.Second, 30 * time.Second},
		AttemptTimeout: 10 * time.Second,
	}
}

// Delay returns how long to wait before the attempt following failedAttempt.
// The schedule clamps to its last entry.
func (p Policy) Delay(failedAttempt int) time.Duration {
	if len(p.Backoff) == 0 {
		return 0
	}
	i := failedAttempt - 1
	if i < 0 {
		i = 0
	}
	if i >= len(p.Backoff) {
		i = len(p.Backoff) - 1
	}
	return p.Backoff[i]
}

// Sender delivers a single notification message.
type Sender interface {
	Send(ctx context.Context, email, message string) error
}

// AccountReader resolves accounts with their owners for message building.
type AccountReader interface {
	FindByID(ctx context.Context, id uint) (*models.Account, error)
}

// LedgerReader resolves committed transfers.
type LedgerReader interface {
	FindByID(ctx context.Context, id uint) (*models.Transfer, error)
}

// Dispatcher consumes notification tasks on a worker pool. Its consumers
// never hold account locks.
type Dispatcher struct {
	tasks    chan Task
	stop     chan struct{}
	wg       sync.WaitGroup
	sender   Sender
	accounts AccountReader
	ledger   LedgerReader
	policy   Policy
	workers  int
	log      *zap.Logger
}

// NewDispatcher creates a dispatcher with the given retry policy and worker
// pool size.
func NewDispatcher(sender Sender, accounts AccountReader, ledger LedgerReader, policy Policy, workers int, log *zap.Logger) *Dispatcher {
	if policy.MaxAttempts <= 0 {
		policy = DefaultPolicy()
	}
	if workers <= 0 {
		workers = 4
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		tasks:    make(chan Task, defaultQueueSize),
		stop:     make(chan struct{}),
		sender:   sender,
		accounts: accounts,
		ledger:   ledger,
		policy:   policy,
		workers:  workers,
		log:      log,
	}
}

// Start launches the worker pool.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

// Shutdown stops the workers and waits for in-flight attempts to finish.
// Queued tasks are abandoned; delivery is best effort.
func (d *Dispatcher) Shutdown() {
	close(d.stop)
	d.wg.Wait()
}

// Notify enqueues the first delivery attempt for a committed transfer. It
// satisfies the coordinator's Notifier interface.
func (d *Dispatcher) Notify(payeeID, transferID uint) {
	d.Enqueue(Task{PayeeID: payeeID, TransferID: transferID, Attempt: 1}, 0)
}

// Enqueue adds a task to the queue after an optional delay.
func (d *Dispatcher) Enqueue(task Task, delay time.Duration) {
	if task.Attempt < 1 {
		task.Attempt = 1
	}
	if delay > 0 {
		time.AfterFunc(delay, func() { d.push(task) })
		return
	}
	d.push(task)
}

func (d *Dispatcher) push(task Task) {
	select {
	case d.tasks <- task:
	case <-d.stop:
		d.log.Warn("dispatcher stopped, dropping notification",
			zap.Uint("transfer_id", task.TransferID),
			zap.Int("attempt", task.Attempt))
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case <-d.stop:
			return
		case task := <-d.tasks:
			d.process(task)
		}
	}
}

func (d *Dispatcher) process(task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), d.policy.AttemptTimeout)
	defer cancel()

	err := d.deliver(ctx, task)
	if err == nil {
		d.log.Info("notification delivered",
			zap.Uint("transfer_id", task.TransferID),
			zap.Int("attempt", task.Attempt))
		return
	}

	if task.Attempt >= d.policy.MaxAttempts {
		d.log.Error("notification failed permanently",
			zap.Uint("payee_id", task.PayeeID),
			zap.Uint("transfer_id", task.TransferID),
			zap.Int("attempts", task.Attempt),
			zap.Error(err))
		return
	}

	delay := d.policy.Delay(task.Attempt)
	d.log.Warn("notification attempt failed",
		zap.Uint("transfer_id", task.TransferID),
		zap.Int("attempt", task.Attempt),
		zap.Duration("retry_in", delay),
		zap.Error(err))

	d.Enqueue(Task{PayeeID: task.PayeeID, TransferID: task.TransferID, Attempt: task.Attempt + 1}, delay)
}

func (d *Dispatcher) deliver(ctx context.Context, task Task) error {
	payee, err := d.accounts.FindByID(ctx, task.PayeeID)
	if err != nil {
		return fmt.Errorf("load payee: %w", err)
	}
	tr, err := d.ledger.FindByID(ctx, task.TransferID)
	if err != nil {
		return fmt.Errorf("load transfer: %w", err)
	}
	payer, err := d.accounts.FindByID(ctx, tr.PayerID)
	if err != nil {
		return fmt.Errorf("load payer: %w", err)
	}

	message := fmt.Sprintf("You received a transfer of $%s from %s.", tr.Amount.StringFixed(2), payer.User.Name)
	return d.sender.Send(ctx, payee.User.Email, message)
}
