package pricing

import (
	"errors"
	"math"
	"time"

	"paintmarket/internal/domain/entities"
)

var (
	ErrInvalidRooms         = errors.New("number of rooms must be positive")
	ErrInvalidRoomSize      = errors.New("room size must be positive")
	ErrInvalidCoats         = errors.New("coats must be at least 1")
	ErrInvalidWallCondition = errors.New("invalid wall condition")
	ErrInvalidProjectType   = errors.New("invalid project type")
)

const (
	DefaultHoursPerDay = 8.0
	DefaultWorkSpeed   = 150.0
	DefaultHourlyRate  = 45.0

	ceilingMultiplier  = 1.4
	primerMultiplier   = 1.25
	textureMultiplier  = 1.2
	exteriorMultiplier = 1.15

	trimHoursPerRoom   = 2.0
	accentHoursPerRoom = 1.5

	dryingHoursPerCoat = 8.0
	exteriorWeatherPad = 8.0

	paintCostPerSqFtCoat = 0.40
	primerCostPerSqFt    = 0.30
	trimCostPerRoom      = 40.0 * 2
)

var wallConditionMultiplier = map[entities.WallCondition]float64{
	entities.WallConditionSmooth:      1.0,
	entities.WallConditionTextured:    1.3,
	entities.WallConditionNeedsRepair: 1.8,
}

// ContractorRates are the contractor attributes the calculator consumes.
type ContractorRates struct {
	HoursPerDay float64
	WorkSpeed   float64
	HourlyRate  float64
}

// RatesFor extracts the calculator rates of a contractor, filling defaults for unset values.
func RatesFor(c entities.Contractor) ContractorRates {
	return ContractorRates{HoursPerDay: c.HoursPerDay, WorkSpeed: c.WorkSpeed, HourlyRate: c.HourlyRate}.withDefaults()
}

func (r ContractorRates) withDefaults() ContractorRates {
	if r.HoursPerDay <= 0 {
		r.HoursPerDay = DefaultHoursPerDay
	}
	if r.WorkSpeed <= 0 {
		r.WorkSpeed = DefaultWorkSpeed
	}
	if r.HourlyRate <= 0 {
		r.HourlyRate = DefaultHourlyRate
	}
	return r
}

// ValidateProject checks the fields the calculator requires.
func ValidateProject(p entities.ProjectDetails) error {
	if p.NumberOfRooms <= 0 {
		return ErrInvalidRooms
	}
	if p.RoomSize <= 0 {
		return ErrInvalidRoomSize
	}
	if p.Coats < 1 {
		return ErrInvalidCoats
	}
	if !p.WallCondition.Valid() {
		return ErrInvalidWallCondition
	}
	if p.ProjectType != "" && !p.ProjectType.Valid() {
		return ErrInvalidProjectType
	}
	return nil
}

// TotalHours returns the labor hours of a project for the given work speed.
func TotalHours(p entities.ProjectDetails, workSpeed float64) float64 {
	hours := p.TotalArea() / workSpeed * float64(p.Coats)
	hours *= wallConditionMultiplier[p.WallCondition]

	if p.IncludeCeiling {
		hours *= ceilingMultiplier
	}
	if p.IncludePrimer {
		hours *= primerMultiplier
	}
	if p.HasTexturedWalls {
		hours *= textureMultiplier
	}
	if p.ProjectType == entities.ProjectTypeExterior {
		hours *= exteriorMultiplier
	}

	rooms := float64(p.NumberOfRooms)
	if p.IncludeTrim {
		hours += rooms * trimHoursPerRoom
	}
	if p.HasAccentWalls {
		hours += rooms * accentHoursPerRoom
	}
	return hours
}

// Phases splits hours into the named work phases. The primer phase only
// exists when primer is applied; paint absorbs its share otherwise.
func Phases(hours float64, withPrimer bool) []entities.Phase {
	type share struct {
		name string
		pct  float64
	}
	shares := []share{{"preparation", 25}, {"painting", 65}, {"finishing", 10}}
	if withPrimer {
		shares = []share{{"preparation", 25}, {"priming", 20}, {"painting", 45}, {"finishing", 10}}
	}

	phases := make([]entities.Phase, 0, len(shares))
	for _, s := range shares {
		phases = append(phases, entities.Phase{
			Name:       s.name,
			Hours:      Round2(hours * s.pct / 100),
			Percentage: s.pct,
		})
	}
	return phases
}

// CalculateTimeline computes labor hours, phases and calendar dates of a project.
func CalculateTimeline(p entities.ProjectDetails, rates ContractorRates, start time.Time) (entities.Timeline, error) {
	if err := ValidateProject(p); err != nil {
		return entities.Timeline{}, err
	}
	rates = rates.withDefaults()

	hours := Round2(TotalHours(p, rates.WorkSpeed))

	drying := float64(p.Coats-1) * dryingHoursPerCoat
	weather := 0.0
	if p.ProjectType == entities.ProjectTypeExterior {
		weather = exteriorWeatherPad
	}

	workingDays := int(math.Ceil(hours / rates.HoursPerDay))
	totalDays := int(math.Ceil((hours + drying + weather) / 24))

	if start.IsZero() {
		start = time.Now().UTC()
	}

	return entities.Timeline{
		TotalHours:     hours,
		WorkingDays:    workingDays,
		TotalDays:      totalDays,
		DryingTime:     drying,
		WeatherDelay:   weather,
		HoursPerDay:    rates.HoursPerDay,
		Phases:         Phases(hours, p.IncludePrimer),
		StartDate:      start,
		CompletionDate: start.AddDate(0, 0, totalDays),
	}, nil
}

// CalculateCost prices the labor of a timeline plus the estimated materials.
func CalculateCost(p entities.ProjectDetails, t entities.Timeline, rates ContractorRates) entities.CostBreakdown {
	rates = rates.withDefaults()
	area := p.TotalArea()

	labor := t.TotalHours * rates.HourlyRate
	paint := area * float64(p.Coats) * paintCostPerSqFtCoat
	primer := 0.0
	if p.IncludePrimer {
		primer = area * primerCostPerSqFt
	}
	trim := 0.0
	if p.IncludeTrim {
		trim = float64(p.NumberOfRooms) * trimCostPerRoom
	}
	materials := paint + primer + trim

	return entities.CostBreakdown{
		LaborCost:    Round2(labor),
		PaintCost:    Round2(paint),
		PrimerCost:   Round2(primer),
		TrimCost:     Round2(trim),
		MaterialCost: Round2(materials),
		TotalCost:    Round2(labor + materials),
	}
}
