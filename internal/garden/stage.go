package garden

// Family groups companion kinds that share an evolution track.
type Family string

const (
	FamilyAnimal Family = "ANIMAL"
	FamilyPlant  Family = "PLANT"
)

// Animal stages.
const (
	StageEgg     = "egg"
	StageBaby    = "baby"
	StageAdult   = "adult"
	StageAncient = "ancient"
)

// Plant stages.
const (
	StageSeed   = "seed"
	StageSprout = "sprout"
	StageBloom  = "bloom"
)

// kindFamilies is the canonical kind→family table. Unknown kinds evolve on
// the animal track.
var kindFamilies = map[string]Family{
	"Chicken":     FamilyAnimal,
	"Dragon":      FamilyAnimal,
	"Sunflower":   FamilyPlant,
	"CrystalTree": FamilyPlant,
}

// FamilyForKind looks up the evolution track for a companion kind.
func FamilyForKind(kind string) Family {
	if f, ok := kindFamilies[kind]; ok {
		return f
	}
	return FamilyAnimal
}

type stageThreshold struct {
	minLevel int
	stage    string
}

// Ordered highest threshold first so the first match wins.
var stageTracks = map[Family][]stageThreshold{
	FamilyAnimal: {
		{30, StageAncient},
		{20, StageAdult},
		{10, StageBaby},
		{1, StageEgg},
	},
	FamilyPlant: {
		{30, StageAncient},
		{20, StageBloom},
		{10, StageSprout},
		{1, StageSeed},
	},
}

// ResolveStage maps a level onto the family's evolution track. Total for all
// positive levels; levels below 1 resolve to the base stage.
func ResolveStage(level int, family Family) string {
	track, ok := stageTracks[family]
	if !ok {
		track = stageTracks[FamilyAnimal]
	}
	for _, t := range track {
		if level >= t.minLevel {
			return t.stage
		}
	}
	return track[len(track)-1].stage
}

// InitialStage is the stage of a freshly created companion (level 1).
func InitialStage(family Family) string {
	return ResolveStage(1, family)
}
