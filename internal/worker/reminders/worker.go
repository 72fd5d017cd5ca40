package reminders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	remindersUC "github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
)

const refreshTimeout = 30 * time.Second

// Worker по расписанию пересчитывает очереди напоминаний
// Сам ничего не отправляет: обновляет метрику reminders_due и пишет сводку в лог
type Worker struct {
	source   WorklistSource
	cron     *cron.Cron
	schedule string
	logger   Logger
}

// New создает Worker; schedule - cron-выражение из пяти полей
func New(source WorklistSource, schedule string, location *time.Location, logger Logger) (*Worker, error) {
	if location == nil {
		location = time.Local
	}

	w := &Worker{
		source:   source,
		cron:     cron.New(cron.WithLocation(location)),
		schedule: schedule,
		logger:   logger,
	}

	if _, err := w.cron.AddFunc(schedule, w.run); err != nil {
		return nil, fmt.Errorf("reminders worker: invalid schedule %q: %w", schedule, err)
	}

	return w, nil
}

// Start запускает планировщик и сразу делает первый пересчет
func (w *Worker) Start() {
	w.logger.Info("RemindersWorker: started, schedule=%q", w.schedule)
	go w.run()
	w.cron.Start()
}

// Stop останавливает планировщик и ждет завершения текущего пересчета
func (w *Worker) Stop(ctx context.Context) {
	done := w.cron.Stop()
	select {
	case <-done.Done():
		w.logger.Info("RemindersWorker: stopped")
	case <-ctx.Done():
		w.logger.Warn("RemindersWorker: stop timed out: %v", ctx.Err())
	}
}

func (w *Worker) run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	w.Refresh(ctx)
}

// Refresh пересчитывает обе очереди
func (w *Worker) Refresh(ctx context.Context) {
	dayBefore, err := w.source.DayBefore(ctx, time.Time{})
	if err != nil {
		w.logger.Error("RemindersWorker: day-before worklist: %v", err)
	} else {
		w.logger.Info("RemindersWorker: %d day-before reminders due%s", len(dayBefore.Items), digest(dayBefore))
	}

	maintenance, err := w.source.Maintenance(ctx)
	if err != nil {
		w.logger.Error("RemindersWorker: maintenance worklist: %v", err)
	} else {
		w.logger.Info("RemindersWorker: %d maintenance messages due", len(maintenance.Items))
	}
}

// digest краткий список "время клиент" для напоминаний накануне
func digest(list *remindersUC.Worklist) string {
	if len(list.Items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		parts = append(parts, fmt.Sprintf("%s %s", item.Booking.Time, item.Booking.ClientName))
	}
	return fmt.Sprintf(" (%s): %s", domain.FormatDate(list.Today.AddDate(0, 0, 1)), strings.Join(parts, ", "))
}
