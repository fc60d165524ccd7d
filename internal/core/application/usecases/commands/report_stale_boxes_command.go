package commands

import (
	"errors"
	"time"

	"lensdispatch/internal/pkg/errs"
	"lensdispatch/internal/pkg/guard"
)

var (
	ErrReportStaleBoxesCommandIsNotConstructed = errors.New(
		"ReportStaleBoxesCommand must be created via NewReportStaleBoxesCommand constructor",
	)
)

// ReportStaleBoxesCommand represents a sweep for boxes stuck in packing past
// their dispatch date. Issued by the watchdog job on a schedule.
type ReportStaleBoxesCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewReportStaleBoxesCommand creates a command to sweep for stale boxes.
// The asOf instant is the cutoff; boxes with an earlier dispatch date that
// never left packing count as stale.
func NewReportStaleBoxesCommand(asOf time.Time) (ReportStaleBoxesCommand, error) {
	if asOf.IsZero() {
		return ReportStaleBoxesCommand{}, errs.NewValueIsRequiredError("asOf")
	}

	return ReportStaleBoxesCommand{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReportStaleBoxesCommandIsNotConstructed if validation fails.
func (c ReportStaleBoxesCommand) Validate() error {
	return c.guard.Validate(ErrReportStaleBoxesCommandIsNotConstructed)
}

// AsOf returns the staleness cutoff.
func (c ReportStaleBoxesCommand) AsOf() time.Time {
	return c.asOf
}
