package services_test

import (
	"sync"
	"testing"
	"time"

	"oms/internal/core/domain/services"
	"oms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingNumberAllocator_NextTrackingNumber(t *testing.T) {
	t.Run("should start at one and format with the UTC date", func(t *testing.T) {
		allocator := services.NewTrackingNumberAllocator(fixedClock)

		assert.Equal(t, "ORD-20250521-000001", allocator.NextTrackingNumber())
		assert.Equal(t, "ORD-20250521-000002", allocator.NextTrackingNumber())
		assert.Equal(t, int64(2), allocator.Current())
	})

	t.Run("should use the UTC calendar day", func(t *testing.T) {
		lateEvening := time.Date(2025, time.May, 21, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
		allocator := services.NewTrackingNumberAllocator(func() time.Time { return lateEvening })

		assert.Equal(t, "ORD-20250522-000001", allocator.NextTrackingNumber())
	})

	t.Run("should continue after the seeded maximum", func(t *testing.T) {
		allocator := services.NewTrackingNumberAllocator(fixedClock)
		allocator.InitializeFromExisting(41)

		assert.Equal(t, "ORD-20250521-000042", allocator.NextTrackingNumber())
	})

	t.Run("should treat a negative seed as zero", func(t *testing.T) {
		allocator := services.NewTrackingNumberAllocator(fixedClock)
		allocator.InitializeFromExisting(-5)

		assert.Equal(t, "ORD-20250521-000001", allocator.NextTrackingNumber())
	})

	t.Run("should widen the suffix past six digits", func(t *testing.T) {
		allocator := services.NewTrackingNumberAllocator(fixedClock)
		allocator.InitializeFromExisting(999999)

		assert.Equal(t, "ORD-20250521-1000000", allocator.NextTrackingNumber())
	})

	t.Run("should hand out unique numbers to concurrent callers", func(t *testing.T) {
		const (
			workers   = 32
			perWorker = 250
		)
		allocator := services.NewTrackingNumberAllocator(fixedClock)
		allocator.InitializeFromExisting(1000)

		results := make(chan string, workers*perWorker)
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perWorker {
					results <- allocator.NextTrackingNumber()
				}
			}()
		}
		wg.Wait()
		close(results)

		seen := make(map[int64]struct{}, workers*perWorker)
		for number := range results {
			seq, err := services.ParseTrackingSequence(number)
			require.NoError(t, err)
			_, dup := seen[seq]
			require.False(t, dup, "duplicate tracking number %s", number)
			seen[seq] = struct{}{}
		}

		assert.Len(t, seen, workers*perWorker)
		assert.Equal(t, int64(1000+workers*perWorker), allocator.Current())
		for seq := int64(1001); seq <= 1000+workers*perWorker; seq++ {
			assert.Contains(t, seen, seq)
		}
	})
}

func TestParseTrackingSequence(t *testing.T) {
	t.Run("should parse the numeric suffix", func(t *testing.T) {
		seq, err := services.ParseTrackingSequence("ORD-20250521-000042")

		require.NoError(t, err)
		assert.Equal(t, int64(42), seq)
	})

	t.Run("should parse wide suffixes", func(t *testing.T) {
		seq, err := services.ParseTrackingSequence("ORD-20250521-1234567")

		require.NoError(t, err)
		assert.Equal(t, int64(1234567), seq)
	})

	t.Run("should round trip formatted numbers", func(t *testing.T) {
		seq, err := services.ParseTrackingSequence(services.FormatTrackingNumber(now, 7))

		require.NoError(t, err)
		assert.Equal(t, int64(7), seq)
	})

	for _, input := range []string{"", "ORD", "ORD-20250521", "INV-20250521-000001", "ORD-2025-000001", "ORD-20250521-abc", "ORD-20250521--1"} {
		t.Run("should reject "+input, func(t *testing.T) {
			_, err := services.ParseTrackingSequence(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}
