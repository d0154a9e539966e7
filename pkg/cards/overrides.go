package cards

// seedOverrides are published identifiers the derivation cannot reproduce.
var seedOverrides = map[string]string{
	"Mister Negative":            "MrNgtvA",
	"The First Ghost Rider":      "GhstThFrstRdr12",
	"Jane Foster Mighty Thor":    "JnFstrA",
	"M.O.D.O.K.":                 "Mdk5",
	"Sam Wilson Captain America": "SmWlsn9",
}

// DefaultOverrides returns a copy of the built-in override table
func DefaultOverrides() map[string]string {
	overrides := make(map[string]string, len(seedOverrides))
	for name, id := range seedOverrides {
		overrides[name] = id
	}
	return overrides
}
