package pagination

import (
	"testing"

	"github.com/dmitrijs2005/userbook/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"valid", Params{PerPage: 10, Skip: 0}, false},
		{"valid with skip", Params{PerPage: 3, Skip: 9}, false},
		{"zero per page", Params{PerPage: 0, Skip: 0}, true},
		{"negative per page", Params{PerPage: -1, Skip: 0}, true},
		{"negative skip", Params{PerPage: 10, Skip: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var appErr *common.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "Solicitação inválida", appErr.Message)
			assert.Equal(t, 400, appErr.Code)
		})
	}
}

func TestNewWindow_Flags(t *testing.T) {
	t.Parallel()

	const total = 10

	tests := []struct {
		name       string
		perPage    int
		skip       int
		returned   int
		wantBefore bool
		wantAfter  bool
	}{
		{"whole set", 10, 0, 10, false, false},
		{"first page", 3, 0, 3, false, true},
		{"middle page", 3, 3, 3, true, true},
		{"penultimate page", 3, 6, 3, true, true},
		{"last partial page", 3, 9, 1, true, false},
		{"empty page past the end", 3, 10, 0, true, false},
		{"page larger than set", 50, 0, 10, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(Params{PerPage: tt.perPage, Skip: tt.skip}, tt.returned, total)
			assert.Equal(t, tt.wantBefore, w.HasBefore, "hasUsersBefore")
			assert.Equal(t, tt.wantAfter, w.HasAfter, "hasUsersAfter")
			assert.Equal(t, total, w.Total)
		})
	}
}

// The invariants hold for every valid (perPage, skip) against a fixed total:
// hasBefore == skip > 0, hasAfter == skip+returned < total, and the returned
// count is max(0, min(perPage, total-skip)).
func TestNewWindow_InvariantSweep(t *testing.T) {
	t.Parallel()

	const total = 17
	for perPage := 1; perPage <= total+2; perPage++ {
		for skip := 0; skip <= total+2; skip++ {
			returned := total - skip
			if returned > perPage {
				returned = perPage
			}
			if returned < 0 {
				returned = 0
			}

			w := NewWindow(Params{PerPage: perPage, Skip: skip}, returned, total)
			assert.Equal(t, skip > 0, w.HasBefore, "perPage=%d skip=%d", perPage, skip)
			assert.Equal(t, skip+returned < total, w.HasAfter, "perPage=%d skip=%d", perPage, skip)
		}
	}
}
