package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"oms/internal/pkg/errs"
)

const (
	trackingNumberPrefix     = "ORD"
	trackingNumberDateLayout = "20060102"
)

// TrackingNumberAllocator mints tracking numbers of the form ORD-YYYYMMDD-NNNNNN.
// The sequence is process-wide and never resets at midnight, so two calls never
// return the same number, whatever the number of concurrent callers.
//
// Build one allocator at startup, seed it from storage and share it.
type TrackingNumberAllocator struct {
	sequence atomic.Int64
	now      Clock
}

// NewTrackingNumberAllocator returns an allocator starting from sequence zero.
// A nil clock falls back to time.Now.
func NewTrackingNumberAllocator(now Clock) *TrackingNumberAllocator {
	if now == nil {
		now = time.Now
	}
	return &TrackingNumberAllocator{now: now}
}

// InitializeFromExisting sets the counter so that the next number is maxObserved+1.
// Negative values are treated as zero.
func (a *TrackingNumberAllocator) InitializeFromExisting(maxObserved int64) {
	if maxObserved < 0 {
		maxObserved = 0
	}
	a.sequence.Store(maxObserved)
}

// Current returns the last sequence handed out.
func (a *TrackingNumberAllocator) Current() int64 {
	return a.sequence.Load()
}

// NextTrackingNumber atomically increments the sequence and formats it with the current UTC date.
// Sequences above 999999 widen the suffix instead of wrapping.
func (a *TrackingNumberAllocator) NextTrackingNumber() string {
	seq := a.sequence.Add(1)
	return FormatTrackingNumber(a.now(), seq)
}

// FormatTrackingNumber renders a tracking number for the given date and sequence.
func FormatTrackingNumber(date time.Time, sequence int64) string {
	return fmt.Sprintf("%s-%s-%06d", trackingNumberPrefix, date.UTC().Format(trackingNumberDateLayout), sequence)
}

// ParseTrackingSequence extracts the numeric suffix of a tracking number.
//
// Example:
//
//	seq, err := services.ParseTrackingSequence("ORD-20250521-000042") // 42
func ParseTrackingSequence(trackingNumber string) (int64, error) {
	parts := strings.Split(trackingNumber, "-")
	if len(parts) != 3 || parts[0] != trackingNumberPrefix {
		return 0, errs.NewValueIsInvalidErrorWithCause("tracking number",
			fmt.Errorf("%q does not match %s-YYYYMMDD-NNNNNN", trackingNumber, trackingNumberPrefix))
	}
	if _, err := time.Parse(trackingNumberDateLayout, parts[1]); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("tracking number", err)
	}

	seq, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || seq < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("tracking number",
			fmt.Errorf("%q has no numeric sequence", trackingNumber))
	}
	return seq, nil
}
