package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseClockDuration converts the back-office duration notations "MM:SS" and
// "HH:MM:SS" into total seconds.
func ParseClockDuration(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, errors.Errorf("unsupported duration format: %q", value)
	}

	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid duration segment %q", part)
		}
		if n < 0 {
			return 0, errors.Errorf("negative duration segment in %q", value)
		}
		numbers = append(numbers, n)
	}

	if len(numbers) == 2 {
		return numbers[0]*60 + numbers[1], nil
	}
	return numbers[0]*3600 + numbers[1]*60 + numbers[2], nil
}

// FormatMinutesSeconds renders seconds as zero-padded "MM:SS".
func FormatMinutesSeconds(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatClock renders seconds as zero-padded "HH:MM:SS".
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
