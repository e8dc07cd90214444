package scheduler

import (
	"context"
	"time"

	"shrijee_plots/internal/usecase"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	DefaultOverdueSpec = "0 6 * * *"
	scanTimeout        = 2 * time.Minute
)

// OverdueJob periodically logs installments that are past due so the sales
// team can follow up. Overdue is never written back; it stays derived.
type OverdueJob struct {
	cron    *cron.Cron
	overdue usecase.IOverdueUseCase
}

func NewOverdueJob(overdue usecase.IOverdueUseCase, spec string) (*OverdueJob, error) {
	if spec == "" {
		spec = DefaultOverdueSpec
	}
	logger := cron.PrintfLogger(logrus.StandardLogger())
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	j := &OverdueJob{cron: c, overdue: overdue}
	if _, err := c.AddFunc(spec, j.Run); err != nil {
		return nil, err
	}
	logrus.Infof("[overdue][scheduler] job registered spec=%q", spec)
	return j, nil
}

func (j *OverdueJob) Start() {
	j.cron.Start()
}

// Stop waits for a running scan to finish.
func (j *OverdueJob) Stop() {
	<-j.cron.Stop().Done()
}

func (j *OverdueJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	logrus.Info("[overdue][scheduler] scan start")
	items, err := j.overdue.Scan(ctx)
	if err != nil {
		logrus.WithError(err).Error("[overdue][scheduler] scan failed")
		return
	}

	var total int64
	for _, it := range items {
		total += it.AmountDue
		logrus.WithFields(logrus.Fields{
			"booking_id":   it.BookingID,
			"plot_id":      it.PlotID,
			"user_id":      it.UserID,
			"installment":  it.InstallmentNumber,
			"amount_due":   it.AmountDue,
			"days_overdue": it.DaysOverdue,
		}).Warn("[overdue][scheduler] installment overdue")
	}
	logrus.WithFields(logrus.Fields{"count": len(items), "amount": total}).Info("[overdue][scheduler] scan done")
}
