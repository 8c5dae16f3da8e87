package scheduler

import (
	"context"
	"time"
)

const RefreshFundDateJob = "refresh-latest-fund-date"

type FundDateRefresher interface {
	RefreshLatestFundDate(ctx context.Context) error
}

// RegisterFundDateRefresh re-reads the latest fund snapshot date every
// interval, starting right away. A zero interval registers nothing.
func (s *Scheduler) RegisterFundDateRefresh(r FundDateRefresher, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}
	return s.NewIntervalJob(RefreshFundDateJob, r.RefreshLatestFundDate, interval, true)
}
