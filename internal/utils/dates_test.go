package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDayRange(t *testing.T) {
	at := time.Date(2025, 3, 10, 15, 42, 7, 0, time.Local)

	start, end := DayRange(at)

	require.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), start)
	require.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local), end)

	// Midnight itself belongs to the day it opens.
	midnightStart, _ := DayRange(start)
	require.Equal(t, start, midnightStart)
}
