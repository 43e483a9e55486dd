package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotProblem(t *testing.T) {
	// Arrange
	input := "\n2 3\n\n  1.5   2\n3.0 5 0.25\n\n10 20 30\n"

	// Act
	problem, err := ParseSlotProblem(strings.NewReader(input))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, SlotProblem{
		Slots:           2,
		Buses:           3,
		DistanceWeight:  1.5,
		PassengerWeight: 2,
		Distances:       []float64{3, 5, 0.25},
		Passengers:      []uint64{10, 20, 30},
	}, problem)
}

func TestParseSlotProblemErrors(t *testing.T) {
	scenarios := map[string]string{
		"too few lines":        "2 2\n1.0 2.0\n3.0 5.0\n",
		"missing distance":     "2 2\n1.0 2.0\n3.0\n10 20\n",
		"extra passenger":      "2 2\n1.0 2.0\n3.0 5.0\n10 20 30\n",
		"three dimensions":     "2 2 2\n1.0 2.0\n3.0 5.0\n10 20\n",
		"one weight":           "2 2\n1.0\n3.0 5.0\n10 20\n",
		"fractional passenger": "2 2\n1.0 2.0\n3.0 5.0\n10.5 20\n",
		"bare dot":             "2 2\n1.0 2.0\n3.0 . 5.0\n10 20\n",
		"empty":                "",
		"slots overflow int":   "9223372036854775808 1\n1 1\n1\n1\n",
		"slots at uint max":    "18446744073709551615 1\n1 1\n1\n1\n",
		"slots above int32":    "2147483648 1\n1 1\n1\n1\n",
	}

	for name, input := range scenarios {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSlotProblem(strings.NewReader(input))

			var inputErr InputError
			assert.True(t, errors.As(err, &inputErr), "expected an input error, got %v", err)
		})
	}
}

func TestParseWorkshopProblem(t *testing.T) {
	// Arrange
	input := "2 3 2\n0 4 1\n4 0 -2\n\n1 2 0\n1 1\n0 1\n"

	// Act
	problem, err := ParseWorkshopProblem(strings.NewReader(input))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, WorkshopProblem{
		Slots:        2,
		Buses:        3,
		Workshops:    2,
		Conflicts:    [][]int64{{0, 4, 1}, {4, 0, -2}, {1, 2, 0}},
		Availability: [][]int64{{1, 1}, {0, 1}},
	}, problem)
}

func TestParseWorkshopProblemErrors(t *testing.T) {
	scenarios := map[string]string{
		"short conflict row":    "1 2 1\n0 1\n1\n1\n",
		"long availability row": "1 2 1\n0 1\n1 0\n1 1\n",
		"missing rows":          "2 2 1\n0 1\n1 0\n1\n",
		"two dimensions":        "1 1\n0\n1\n",
		"negative dimension":    "1 -1 1\n0\n1\n",
		"non-numeric":           "1 1 1\nx\n1\n",
		"huge dimensions":       "1 99999999999 1\n0\n",
		"empty":                 "\n\n",
		"zero slots, huge shop": "0 1 9223372036854775807\n0\n",
	}

	for name, input := range scenarios {
		t.Run(name, func(t *testing.T) {
			_, err := ParseWorkshopProblem(strings.NewReader(input))

			var inputErr InputError
			assert.True(t, errors.As(err, &inputErr), "expected an input error, got %v", err)
		})
	}
}

func TestProblemFromMissingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "missing.txt")

	_, err := SlotProblemFromFile(file)
	var inputErr InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, file, inputErr.File)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = WorkshopProblemFromFile(file)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProblemFromFileNamesTheFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("2 2\n1 2\n3\n10 20\n"), 0666))

	_, err := SlotProblemFromFile(file)

	require.Error(t, err)
	assert.Contains(t, err.Error(), file)
	assert.Contains(t, err.Error(), "2 buses declared, but found 1 distances and 2 passenger counts")
}
