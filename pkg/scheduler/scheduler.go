package scheduler

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"
	"time"

	"parceltrack/pkg/logger"
)

// Job определяет интерфейс для задачи, которую планировщик гоняет по таймеру.
type Job interface {
	// Do выполняет логику задачи.
	Do(context.Context) error

	// Info возвращает читаемое описание задачи для логгирования и отладки.
	Info() string
}

type schedulerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

var ErrInvalidInterval = errors.New("interval must be positive")

// Scheduler единственный на процесс таймер задачи. Повторный Start
// заменяет взведенный таймер, а не наслаивает второй, поэтому из
// планировщика всегда не больше одного прогона.
type Scheduler struct {
	log schedulerLogger
	job Job

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func New(log schedulerLogger, job Job) *Scheduler {
	return &Scheduler{
		log: log,
		job: job,
	}
}

// Start взводит таймер с заданным интервалом. Уже взведенный таймер
// снимается: его текущий прогон дорабатывает, новый цикл стартует заново.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.disarm()

	tickCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.cancel = cancel
	s.done = done
	s.running = true

	s.log.Info("Starting periodic execution",
		logger.NewField("task", s.job.Info()),
		logger.NewField("interval", interval),
	)

	go s.run(tickCtx, interval, done)

	return nil
}

// Stop снимает таймер. Прогон, начатый до вызова, дорабатывает до конца,
// следующего тика уже не будет.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disarm()
	s.running = false
}

func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// вызывать только под mu
func (s *Scheduler) disarm() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}

func (s *Scheduler) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Warn("Stopping task (context cancelled)",
				logger.NewField("task", s.job.Info()),
			)
			return
		case <-ticker.C:
			s.executeSafely(ctx)
		}
	}
}

func (s *Scheduler) executeSafely(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			s.log.Error("Scheduled task panic",
				logger.NewField("task", s.job.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", stack),
			)
		}
	}()

	if err := s.job.Do(ctx); err != nil {
		s.log.Error("Scheduled task failed",
			logger.NewField("task", s.job.Info()),
			logger.NewField("error", err),
		)
	}
}
