package pricing

import (
	"math"
	"testing"
	"time"

	"paintmarket/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smoothRoom() entities.ProjectDetails {
	return entities.ProjectDetails{
		ProjectType:   entities.ProjectTypeInterior,
		NumberOfRooms: 1,
		RoomSize:      120,
		WallCondition: entities.WallConditionSmooth,
		Coats:         2,
	}
}

func TestCalculateTimeline_SingleSmoothRoom(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	tl, err := CalculateTimeline(smoothRoom(), ContractorRates{HoursPerDay: 8, WorkSpeed: 40, HourlyRate: 50}, start)
	require.NoError(t, err)

	assert.Equal(t, 6.0, tl.TotalHours)
	assert.Equal(t, 1, tl.WorkingDays)
	assert.Equal(t, 8.0, tl.DryingTime)
	assert.Equal(t, 0.0, tl.WeatherDelay)
	assert.Equal(t, 1, tl.TotalDays)
	assert.Equal(t, start.AddDate(0, 0, 1), tl.CompletionDate)
}

func TestCalculateTimeline_Modifiers(t *testing.T) {
	p := smoothRoom()
	p.NumberOfRooms = 2
	p.WallCondition = entities.WallConditionNeedsRepair
	p.IncludeCeiling = true
	p.IncludePrimer = true
	p.HasTexturedWalls = true
	p.ProjectType = entities.ProjectTypeExterior
	p.IncludeTrim = true
	p.HasAccentWalls = true

	tl, err := CalculateTimeline(p, ContractorRates{HoursPerDay: 6, WorkSpeed: 40}, time.Time{})
	require.NoError(t, err)

	want := 240.0/40*2*1.8*1.4*1.25*1.2*1.15 + 2*2 + 2*1.5
	assert.InDelta(t, want, tl.TotalHours, 0.01)
	assert.Equal(t, int(math.Ceil(tl.TotalHours/6)), tl.WorkingDays)
	assert.Equal(t, 8.0, tl.WeatherDelay)
	assert.Equal(t, int(math.Ceil((tl.TotalHours+8+8)/24)), tl.TotalDays)
	assert.False(t, tl.StartDate.IsZero())
}

func TestCalculateTimeline_PhasesSumToTotal(t *testing.T) {
	for _, primer := range []bool{true, false} {
		p := smoothRoom()
		p.NumberOfRooms = 3
		p.RoomSize = 173
		p.IncludePrimer = primer

		tl, err := CalculateTimeline(p, ContractorRates{WorkSpeed: 37}, time.Now())
		require.NoError(t, err)

		sum := 0.0
		pct := 0.0
		for _, ph := range tl.Phases {
			sum += ph.Hours
			pct += ph.Percentage
		}
		assert.InDelta(t, tl.TotalHours, sum, 0.05)
		assert.Equal(t, 100.0, pct)
		if primer {
			assert.Len(t, tl.Phases, 4)
		} else {
			assert.Len(t, tl.Phases, 3)
		}
		assert.Greater(t, tl.TotalHours, 0.0)
	}
}

func TestCalculateTimeline_DefaultsAndValidation(t *testing.T) {
	tl, err := CalculateTimeline(smoothRoom(), ContractorRates{}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, DefaultHoursPerDay, tl.HoursPerDay)
	assert.InDelta(t, 120.0/DefaultWorkSpeed*2, tl.TotalHours, 0.01)

	cases := []struct {
		name   string
		mutate func(*entities.ProjectDetails)
		want   error
	}{
		{"no rooms", func(p *entities.ProjectDetails) { p.NumberOfRooms = 0 }, ErrInvalidRooms},
		{"no size", func(p *entities.ProjectDetails) { p.RoomSize = 0 }, ErrInvalidRoomSize},
		{"no coats", func(p *entities.ProjectDetails) { p.Coats = 0 }, ErrInvalidCoats},
		{"bad wall", func(p *entities.ProjectDetails) { p.WallCondition = "cracked" }, ErrInvalidWallCondition},
		{"bad type", func(p *entities.ProjectDetails) { p.ProjectType = "boat" }, ErrInvalidProjectType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := smoothRoom()
			tc.mutate(&p)
			_, err := CalculateTimeline(p, ContractorRates{}, time.Now())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCalculateCost(t *testing.T) {
	p := smoothRoom()
	p.NumberOfRooms = 2
	p.IncludePrimer = true
	p.IncludeTrim = true
	rates := ContractorRates{HoursPerDay: 8, WorkSpeed: 40, HourlyRate: 50}

	tl, err := CalculateTimeline(p, rates, time.Now())
	require.NoError(t, err)
	cost := CalculateCost(p, tl, rates)

	assert.Equal(t, Round2(tl.TotalHours*50), cost.LaborCost)
	assert.Equal(t, 192.0, cost.PaintCost)
	assert.Equal(t, 72.0, cost.PrimerCost)
	assert.Equal(t, 160.0, cost.TrimCost)
	assert.Equal(t, 424.0, cost.MaterialCost)
	assert.Equal(t, Round2(cost.LaborCost+cost.MaterialCost), cost.TotalCost)
}
