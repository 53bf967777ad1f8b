package recommend

// Client is one row of the client table. Loaded once per run and
// immutable afterwards.
type Client struct {
	ID           string
	BirthYear    int // 0 means the birth year was missing from the input
	VehicleOwner bool

	// Purchases holds the numeric purchase-amount columns of the client
	// table, keyed by product code. Every client in a dataset carries
	// the same key set; cells that were empty in the input are stored
	// as 0.
	Purchases map[string]float64
}

// LifeStage buckets a client's age into one of four bands.
type LifeStage string

const (
	StageEarlyCareer   LifeStage = "Early Career"
	StageMidCareer     LifeStage = "Mid Career"
	StageParenting     LifeStage = "Parenting"
	StagePreRetirement LifeStage = "Pre-retirement"
)

// Profile is the derived demographic segment for a client.
type Profile struct {
	ClientID     string    `json:"client_id"`
	Age          int       `json:"age"`
	LifeStage    LifeStage `json:"life_stage"`
	VehicleOwner bool      `json:"vehicle_owner"`
}

// LifeStageFor maps an age to its life-stage band.
func LifeStageFor(age int) LifeStage {
	switch {
	case age < 30:
		return StageEarlyCareer
	case age < 40:
		return StageMidCareer
	case age < 55:
		return StageParenting
	default:
		return StagePreRetirement
	}
}

// NewProfile derives age and life stage for a client. The reference
// year stands in for "today" so results are reproducible across runs.
func NewProfile(c Client, referenceYear int) (Profile, error) {
	if c.BirthYear == 0 {
		return Profile{}, dataErr("birth_year", "missing for client %s", c.ID)
	}

	age := referenceYear - c.BirthYear
	if age < 0 {
		return Profile{}, dataErr("birth_year", "%d is after reference year %d for client %s", c.BirthYear, referenceYear, c.ID)
	}

	return Profile{
		ClientID:     c.ID,
		Age:          age,
		LifeStage:    LifeStageFor(age),
		VehicleOwner: c.VehicleOwner,
	}, nil
}
