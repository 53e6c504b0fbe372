package wod

// Breed identifies a werewolf or changeling breed
type Breed string

// Breed constants
const (
	BreedHomid Breed = "HOMID"
	BreedMetis Breed = "METIS"
	BreedLupus Breed = "LUPUS"
)

// BreedInfo holds the per-breed generation data
type BreedInfo struct {
	Name           string
	StartingGnosis int
	StartingGifts  []string
}

var breeds = map[Breed]BreedInfo{
	BreedHomid: {
		Name:           "Homid",
		StartingGnosis: 1,
		StartingGifts:  []string{"Master of Fire", "Persuasion", "Smell of Man"},
	},
	BreedMetis: {
		Name:           "Metis",
		StartingGnosis: 3,
		StartingGifts:  []string{"Create Element", "Primal Anger", "Sense Wyrm", "Shed"},
	},
	BreedLupus: {
		Name:           "Lupus",
		StartingGnosis: 5,
		StartingGifts:  []string{"Heightened Senses", "Hare's Leap", "Prey Mind", "Sense Prey", "Sense Wyld"},
	},
}

// Info returns the generation data for the breed
func (b Breed) Info() BreedInfo { return breeds[b] }

// Breeds returns all breeds in a stable order
func Breeds() []Breed {
	return []Breed{BreedHomid, BreedMetis, BreedLupus}
}

// Auspice identifies a werewolf auspice
type Auspice string

// Auspice constants
const (
	AuspiceRagabash Auspice = "RAGABASH"
	AuspiceTheurge  Auspice = "THEURGE"
	AuspicePhilodox Auspice = "PHILODOX"
	AuspiceGalliard Auspice = "GALLIARD"
	AuspiceAhroun   Auspice = "AHROUN"
)

// AuspiceInfo holds the per-auspice generation data
type AuspiceInfo struct {
	Name           string
	StartingRage   int
	StartingGlory  int
	StartingHonor  int
	StartingWisdom int
	StartingGifts  []string
}

var auspices = map[Auspice]AuspiceInfo{
	AuspiceRagabash: {
		Name:           "Ragabash",
		StartingRage:   1,
		StartingGlory:  1,
		StartingHonor:  1,
		StartingWisdom: 1,
		StartingGifts:  []string{"Blur of the Milky Eye", "Open Seal", "Scent of Running Water"},
	},
	AuspiceTheurge: {
		Name:           "Theurge",
		StartingRage:   2,
		StartingWisdom: 3,
		StartingGifts:  []string{"Mother's Touch", "Spirit Speech", "Sense Wyrm"},
	},
	AuspicePhilodox: {
		Name:          "Philodox",
		StartingRage:  3,
		StartingHonor: 3,
		StartingGifts: []string{"Resist Pain", "Scent of the True Form", "Truth of Gaia"},
	},
	AuspiceGalliard: {
		Name:           "Galliard",
		StartingRage:   4,
		StartingGlory:  2,
		StartingWisdom: 1,
		StartingGifts:  []string{"Beast Speech", "Call of the Wyld", "Mindspeak"},
	},
	AuspiceAhroun: {
		Name:          "Ahroun",
		StartingRage:  5,
		StartingGlory: 2,
		StartingHonor: 1,
		StartingGifts: []string{"Falling Touch", "Inspiration", "Razor Claws"},
	},
}

// Info returns the generation data for the auspice
func (a Auspice) Info() AuspiceInfo { return auspices[a] }

// Auspices returns all auspices in a stable order
func Auspices() []Auspice {
	return []Auspice{AuspiceRagabash, AuspiceTheurge, AuspicePhilodox, AuspiceGalliard, AuspiceAhroun}
}

// Tribe identifies a werewolf tribe
type Tribe string

// Tribe constants
const (
	TribeBlackFuries    Tribe = "BLACK_FURIES"
	TribeBoneGnarlers   Tribe = "BONE_GNARLERS"
	TribeChildrenOfGaia Tribe = "CHILDREN_OF_GAIA"
	TribeFianna         Tribe = "FIANNA"
	TribeGetOfFenris    Tribe = "GET_OF_FENRIS"
	TribeGlassWalkers   Tribe = "GLASS_WALKERS"
	TribeRedTalons      Tribe = "RED_TALONS"
	TribeShadowLords    Tribe = "SHADOW_LORDS"
	TribeSilentStriders Tribe = "SILENT_STRIDERS"
	TribeSilverFangs    Tribe = "SILVER_FANGS"
	TribeUktena         Tribe = "UKTENA"
	TribeWendigo        Tribe = "WENDIGO"
)

// TribeInfo holds the per-tribe generation data
type TribeInfo struct {
	Name              string
	StartingWillpower int
	Totem             string
}

var tribes = map[Tribe]TribeInfo{
	TribeBlackFuries:    {Name: "Black Furies", StartingWillpower: 3, Totem: "Pegasus"},
	TribeBoneGnarlers:   {Name: "Bone Gnarlers", StartingWillpower: 4, Totem: "Rat"},
	TribeChildrenOfGaia: {Name: "Children of Gaia", StartingWillpower: 4, Totem: "Unicorn"},
	TribeFianna:         {Name: "Fianna", StartingWillpower: 3, Totem: "Stag"},
	TribeGetOfFenris:    {Name: "Get of Fenris", StartingWillpower: 3, Totem: "Fenris"},
	TribeGlassWalkers:   {Name: "Glass Walkers", StartingWillpower: 3, Totem: "Cockroach"},
	TribeRedTalons:      {Name: "Red Talons", StartingWillpower: 3, Totem: "Falcon"},
	TribeShadowLords:    {Name: "Shadow Lords", StartingWillpower: 3, Totem: "Grandfather Thunder"},
	TribeSilentStriders: {Name: "Silent Striders", StartingWillpower: 3, Totem: "Owl"},
	TribeSilverFangs:    {Name: "Silver Fangs", StartingWillpower: 3, Totem: "Falcon"},
	TribeUktena:         {Name: "Uktena", StartingWillpower: 3, Totem: "Uktena"},
	TribeWendigo:        {Name: "Wendigo", StartingWillpower: 3, Totem: "Wendigo"},
}

// Info returns the generation data for the tribe
func (t Tribe) Info() TribeInfo { return tribes[t] }

// Tribes returns all tribes in a stable order
func Tribes() []Tribe {
	return []Tribe{
		TribeBlackFuries,
		TribeBoneGnarlers,
		TribeChildrenOfGaia,
		TribeFianna,
		TribeGetOfFenris,
		TribeGlassWalkers,
		TribeRedTalons,
		TribeShadowLords,
		TribeSilentStriders,
		TribeSilverFangs,
		TribeUktena,
		TribeWendigo,
	}
}
