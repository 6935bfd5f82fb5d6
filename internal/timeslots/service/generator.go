package service

import (
	"context"
	"fmt"
	"time"

	"salonbook/internal/timeslots/repository"
	"salonbook/pkg/config"
	"salonbook/pkg/duration"
	apperrors "salonbook/pkg/errors"
	"salonbook/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProfessionalSource streams professionals one at a time. The generator
// must never materialize the full professional set in memory.
type ProfessionalSource interface {
	StreamAll(ctx context.Context, fn func(*model.Professional) error) error
}

type GenerationReport struct {
	Professionals int   `json:"professionals"`
	Days          int   `json:"days"`
	SlotsInserted int64 `json:"slotsInserted"`
}

type HorizonGenerator interface {
	GenerateHorizon(ctx context.Context, days int) (*GenerationReport, error)
}

// maxHorizonDays caps a requested horizon at the same ceiling the
// configuration allows for HorizonDays.
const maxHorizonDays = 90

type horizonGenerator struct {
	slots         repository.TimeSlotRepository
	professionals ProfessionalSource
	cfg           *config.Config
	now           func() time.Time
}

func NewHorizonGenerator(
	slots repository.TimeSlotRepository,
	professionals ProfessionalSource,
	cfg *config.Config,
) HorizonGenerator {
	return &horizonGenerator{
		slots:         slots,
		professionals: professionals,
		cfg:           cfg,
		now:           time.Now,
	}
}

// GenerateHorizon materializes the slot grid for every professional over
// the next `days` consecutive calendar days, today included. It is
// idempotent: existing slots are skipped by key and duplicate-key errors
// from a concurrent generator are swallowed. Any other error aborts the
// run. This is an expensive batch operation and must only run on its
// external trigger, never at process start.
func (g *horizonGenerator) GenerateHorizon(ctx context.Context, days int) (*GenerationReport, error) {
	if days <= 0 {
		days = g.cfg.HorizonDays
	}
	if days > maxHorizonDays {
		days = maxHorizonDays
	}

	windows, err := candidateWindows(g.cfg.WindowStart, g.cfg.WindowEnd, g.cfg.SlotGranularityMin)
	if err != nil {
		return nil, apperrors.Internal("Invalid slot window configuration", err)
	}

	dates := make([]string, days)
	today := g.now()
	for i := range dates {
		dates[i] = today.AddDate(0, 0, i).Format("2006-01-02")
	}

	report := &GenerationReport{Days: days}
	start := g.now()

	err = g.professionals.StreamAll(ctx, func(p *model.Professional) error {
		inserted, err := g.generateForProfessional(ctx, p, dates, windows)
		if err != nil {
			return err
		}
		report.Professionals++
		report.SlotsInserted += inserted

		g.cfg.Log.Info("Slot horizon ensured for professional",
			"professional_id", p.ID,
			"salon_id", p.SalonID,
			"days", days,
			"slots_inserted", inserted,
		)
		return nil
	})
	if err != nil {
		g.cfg.Log.Error("Slot horizon generation aborted",
			"professionals_done", report.Professionals,
			"error", err,
		)
		return nil, apperrors.Internal("Slot horizon generation failed", err)
	}

	g.cfg.Log.Info("Slot horizon generation completed",
		"professionals", report.Professionals,
		"days", days,
		"slots_inserted", report.SlotsInserted,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

func (g *horizonGenerator) generateForProfessional(ctx context.Context, p *model.Professional, dates []string, windows []slotWindow) (int64, error) {
	var inserted int64

	for _, date := range dates {
		existing, err := g.slots.ExistingStartTimes(ctx, p.ID, date)
		if err != nil {
			return inserted, err
		}

		var missing []*model.TimeSlot
		for _, w := range windows {
			if _, ok := existing[w.Start]; ok {
				continue
			}
			missing = append(missing, &model.TimeSlot{
				ProfessionalID: p.ID,
				SalonID:        p.SalonID,
				Date:           date,
				StartTime:      w.Start,
				EndTime:        w.End,
				IsBooked:       false,
			})
		}
		if len(missing) == 0 {
			continue
		}

		n, err := g.slots.InsertMany(ctx, missing)
		inserted += int64(n)
		if err != nil {
			// A concurrent generator may have won some keys; only that
			// race is tolerable.
			if mongo.IsDuplicateKeyError(err) {
				g.cfg.Log.Debug("Concurrent slot generation detected, duplicates skipped",
					"professional_id", p.ID,
					"date", date,
				)
				continue
			}
			return inserted, err
		}
	}
	return inserted, nil
}

type slotWindow struct {
	Start string
	End   string
}

// candidateWindows cuts the daily operating window into fixed-granularity
// (start, end) pairs; with the default 09:00-18:00 window and 5-minute
// granularity that is 108 windows.
func candidateWindows(windowStart, windowEnd string, granularityMin int) ([]slotWindow, error) {
	start, err := duration.ParseClock(windowStart)
	if err != nil {
		return nil, err
	}
	end, err := duration.ParseClock(windowEnd)
	if err != nil {
		return nil, err
	}
	if granularityMin <= 0 {
		return nil, fmt.Errorf("granularity must be positive, got %d", granularityMin)
	}
	if end <= start {
		return nil, fmt.Errorf("window end %s must be after start %s", windowEnd, windowStart)
	}

	var windows []slotWindow
	for at := start; at+granularityMin <= end; at += granularityMin {
		windows = append(windows, slotWindow{
			Start: fmt.Sprintf("%02d:%02d", at/60, at%60),
			End:   fmt.Sprintf("%02d:%02d", (at+granularityMin)/60, (at+granularityMin)%60),
		})
	}
	return windows, nil
}
