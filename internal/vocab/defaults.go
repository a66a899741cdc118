package vocab

// Built-in fixed vocabularies. Curated documents extend these; they are
// deliberately conservative so an empty vocab dir still behaves sanely.

var defaultStopwords = []string{
	"the", "and", "of", "for", "with", "from", "set", "pack", "vol",
	"volume", "file", "files", "new", "version", "update", "updated",
	"final", "full", "free", "sample", "test", "model", "models",
	"print", "printable", "printing", "resin", "fdm",
}

// defaultTabletopHints is the fixed hint vocabulary of the tabletop gate.
var defaultTabletopHints = []string{
	"mini", "minis", "miniature", "miniatures", "terrain", "scenery",
	"base", "bases", "bust", "busts", "scale", "squad", "regiment",
	"unit", "units", "warband", "wargame", "tabletop", "dungeon",
	"tile", "tiles", "token", "tokens", "prop", "props", "bits",
}

var defaultAmbiguous = []string{
	"angel", "shadow", "ghost", "hunter", "queen", "king", "ivy",
	"raven", "storm", "phoenix", "wolf", "fox", "blade", "widow",
	"beast", "doctor", "mercy", "hawk", "viper", "rose",
}

var defaultMounts = []string{
	"horse", "wolf", "bear", "boar", "dragon", "drake", "griffon",
	"gryph", "raptor", "manticore", "pegasus", "unicorn", "terrorgeist",
	"wyvern", "lion", "stag",
}

var defaultGenericNouns = []string{
	"warrior", "soldier", "fighter", "hero", "guard", "archer", "mage",
	"wizard", "priest", "girl", "boy", "man", "woman", "creature",
	"monster", "statue", "figure", "figurine", "sculpt", "sculpture",
	"diorama",
}

var defaultMonths = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept",
	"oct", "nov", "dec",
}

var defaultPackaging = []string{
	"welcome", "bundle", "collection", "release", "reward", "rewards",
	"bonus", "exclusive", "freebie", "promo", "stretch", "goal",
	"patreon", "gumroad", "myminifactory", "mmf", "cults", "cults3d",
	"kickstarter", "thingiverse", "tribes", "loot",
}

var defaultAxes = map[string]Axis{
	"split":        {Kind: AxisSegmentation, Value: "split"},
	"multipart":    {Kind: AxisSegmentation, Value: "split"},
	"sectioned":    {Kind: AxisSegmentation, Value: "split"},
	"onepiece":     {Kind: AxisSegmentation, Value: "merged"},
	"unsplit":      {Kind: AxisSegmentation, Value: "merged"},
	"merged":       {Kind: AxisSegmentation, Value: "merged"},
	"hollow":       {Kind: AxisInternalVolume, Value: "hollow"},
	"hollowed":     {Kind: AxisInternalVolume, Value: "hollow"},
	"solid":        {Kind: AxisInternalVolume, Value: "solid"},
	"presupported": {Kind: AxisSupportState, Value: "supported"},
	"supported":    {Kind: AxisSupportState, Value: "supported"},
	"supports":     {Kind: AxisSupportState, Value: "supported"},
	"unsupported":  {Kind: AxisSupportState, Value: "unsupported"},
	"bust":         {Kind: AxisPartPackType, Value: "bust"},
	"base":         {Kind: AxisPartPackType, Value: "base"},
	"bases":        {Kind: AxisPartPackType, Value: "base"},
	"bits":         {Kind: AxisPartPackType, Value: "bits"},
	"kit":          {Kind: AxisPartPackType, Value: "kit"},
}

var defaultContentFlags = map[string]string{
	"nsfw":  "nsfw",
	"nude":  "nsfw",
	"naked": "nsfw",
	"lewd":  "nsfw",
	"sfw":   "sfw",
}

func seedDefaults(snap *Snapshot) {
	for _, word := range defaultStopwords {
		snap.stopwords[word] = struct{}{}
	}
	for _, word := range defaultTabletopHints {
		snap.tabletopHints[word] = struct{}{}
	}
	for _, word := range defaultAmbiguous {
		snap.ambiguous[word] = struct{}{}
	}
	for _, word := range defaultMounts {
		snap.mounts[word] = struct{}{}
	}
	for _, word := range defaultGenericNouns {
		snap.genericNouns[word] = struct{}{}
	}
	for _, word := range defaultMonths {
		snap.months[word] = struct{}{}
	}
	for _, word := range defaultPackaging {
		snap.packaging[word] = struct{}{}
	}
	for token, axis := range defaultAxes {
		snap.axes[token] = axis
	}
	for token, flag := range defaultContentFlags {
		snap.contentFlags[token] = flag
	}
}
