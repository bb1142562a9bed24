package calendar

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// CompositeHolidaySource implements HolidaySource with fallback strategy
// Primary: RemoteHolidaySource (HTTP)
// Fallback: FileHolidaySource (local file)
type CompositeHolidaySource struct {
	primary  HolidaySource
	fallback HolidaySource
	logger   *zap.Logger
}

// NewCompositeHolidaySource creates a new CompositeHolidaySource
func NewCompositeHolidaySource(primary, fallback HolidaySource, logger *zap.Logger) *CompositeHolidaySource {
	return &CompositeHolidaySource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// LoadHolidays tries primary first
func (cs *CompositeHolidaySource) LoadHolidays(ctx context.Context, year int) (*HolidaySet, error) {
	set, err := cs.primary.LoadHolidays(ctx, year)
	if err == nil {
		return set, nil
	}

	cs.logger.Warn("Primary holiday source failed, falling back",
		zap.Int("year", year),
		zap.Error(err))

	set, fallbackErr := cs.fallback.LoadHolidays(ctx, year)
	if fallbackErr != nil {
		return nil, fmt.Errorf("primary and fallback both failed: primary=%w, fallback=%v", err, fallbackErr)
	}

	return set, nil
}
