package wod

// Clan identifies a vampire clan
type Clan string

// Clan constants
const (
	ClanAssamite       Clan = "ASSAMITE"
	ClanBrujah         Clan = "BRUJAH"
	ClanFollowersOfSet Clan = "FOLLOWERS_OF_SET"
	ClanGangrel        Clan = "GANGREL"
	ClanGiovanni       Clan = "GIOVANNI"
	ClanLasombra       Clan = "LASOMBRA"
	ClanMalkavian      Clan = "MALKAVIAN"
	ClanNosferatu      Clan = "NOSFERATU"
	ClanRavnos         Clan = "RAVNOS"
	ClanToreador       Clan = "TOREADOR"
	ClanTremere        Clan = "TREMERE"
	ClanTzimisce       Clan = "TZIMISCE"
	ClanVentrue        Clan = "VENTRUE"
)

// ClanInfo holds the per-clan generation data
type ClanInfo struct {
	Name string
	// Disciplines every member of the clan starts with, bought at the
	// discounted in-clan multiplier
	Disciplines []string
}

var clans = map[Clan]ClanInfo{
	ClanAssamite:       {Name: "Assamite", Disciplines: []string{"Celerity", "Obfuscate", "Quietus"}},
	ClanBrujah:         {Name: "Brujah", Disciplines: []string{"Celerity", "Potence", "Presence"}},
	ClanFollowersOfSet: {Name: "Followers of Set", Disciplines: []string{"Obfuscate", "Presence", "Serpentis"}},
	ClanGangrel:        {Name: "Gangrel", Disciplines: []string{"Animalism", "Fortitude", "Protean"}},
	ClanGiovanni:       {Name: "Giovanni", Disciplines: []string{"Dominate", "Necromancy", "Potence"}},
	ClanLasombra:       {Name: "Lasombra", Disciplines: []string{"Dominate", "Obfuscate", "Potence"}},
	ClanMalkavian:      {Name: "Malkavian", Disciplines: []string{"Auspex", "Dominate", "Obfuscate"}},
	ClanNosferatu:      {Name: "Nosferatu", Disciplines: []string{"Animalism", "Obfuscate", "Potence"}},
	ClanRavnos:         {Name: "Ravnos", Disciplines: []string{"Animalism", "Chimerstry", "Fortitude"}},
	ClanToreador:       {Name: "Toreador", Disciplines: []string{"Auspex", "Celerity", "Presence"}},
	ClanTremere:        {Name: "Tremere", Disciplines: []string{"Auspex", "Dominate", "Thaumaturgy"}},
	ClanTzimisce:       {Name: "Tzimisce", Disciplines: []string{"Animalism", "Auspex", "Vicissitude"}},
	ClanVentrue:        {Name: "Ventrue", Disciplines: []string{"Dominate", "Fortitude", "Presence"}},
}

// Info returns the generation data for the clan
func (c Clan) Info() ClanInfo {
	return clans[c]
}

// IsValid reports whether the clan is known
func (c Clan) IsValid() bool {
	_, ok := clans[c]
	return ok
}

// HasDiscipline reports whether name is one of the clan's own
// disciplines
func (c Clan) HasDiscipline(name string) bool {
	for _, d := range clans[c].Disciplines {
		if d == name {
			return true
		}
	}
	return false
}

// Clans returns all clans in a stable order
func Clans() []Clan {
	return []Clan{
		ClanAssamite,
		ClanBrujah,
		ClanFollowersOfSet,
		ClanGangrel,
		ClanGiovanni,
		ClanLasombra,
		ClanMalkavian,
		ClanNosferatu,
		ClanRavnos,
		ClanToreador,
		ClanTremere,
		ClanTzimisce,
		ClanVentrue,
	}
}
