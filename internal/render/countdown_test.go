package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/invitekit/invitekit/internal/record"
)

func TestBreakdown(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	target := time.Date(2026, 6, 15, 17, 30, 45, 0, time.UTC)

	got := Breakdown(target, now)
	require.Equal(t, Units{Days: 14, Hours: 5, Minutes: 30, Seconds: 45}, got)
}

func TestBreakdownIdempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	target := now.Add(90*time.Hour + 7*time.Minute)

	first := Breakdown(target, now)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Breakdown(target, now))
	}
}

func TestBreakdownPastTargetClampsToZero(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	got := Breakdown(now.Add(-48*time.Hour), now)
	require.True(t, got.IsZero())
	require.GreaterOrEqual(t, got.Days, 0)
}

func TestBreakdownZeroTarget(t *testing.T) {
	t.Parallel()

	require.True(t, Breakdown(time.Time{}, time.Now()).IsZero())
}

func TestPad(t *testing.T) {
	t.Parallel()

	require.Equal(t, "05", Pad(5))
	require.Equal(t, "00", Pad(0))
	require.Equal(t, "123", Pad(123))
}

func TestRenderCountdownMinimal(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	target := now.Add(24*time.Hour + 2*time.Hour + 3*time.Minute + 4*time.Second)

	node := renderCountdown(target, record.CountdownMinimal, now, "#fff")
	require.True(t, node.HasClass("countdown--minimal"))
	require.Equal(t, "01 / 02 / 03 / 04", node.VisibleText())
}

func TestRenderCountdownBoxes(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	target := now.Add(48 * time.Hour)

	for _, style := range []record.CountdownStyle{record.CountdownClassic, record.CountdownModern} {
		node := renderCountdown(target, style, now, "#abc123")
		boxes := 0
		for _, c := range node.Children() {
			if c.HasClass("countdown__box") {
				boxes++
			}
		}
		require.Equal(t, 4, boxes, "style %s", style)
		require.Contains(t, node.VisibleText(), "Gün")
		require.Contains(t, node.VisibleText(), "Saniye")
	}
}

func TestRenderCountdownUnknownStyleDefaultsToClassic(t *testing.T) {
	t.Parallel()

	node := renderCountdown(time.Now().Add(time.Hour), record.CountdownStyle("sparkly"), time.Now(), "#fff")
	require.True(t, node.HasClass("countdown--classic"))
}

func TestRenderCountdownAbsentTargetAllZeros(t *testing.T) {
	t.Parallel()

	node := renderCountdown(time.Time{}, record.CountdownMinimal, time.Now(), "#fff")
	require.Equal(t, "00 / 00 / 00 / 00", node.VisibleText())
	_, hasTarget := node.Attr("data-countdown-target")
	require.False(t, hasTarget)
}
