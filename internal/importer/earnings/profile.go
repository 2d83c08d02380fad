package earnings

// Kind is what a profile's rows become.
type Kind string

const (
	KindDaily     Kind = "daily"
	KindUniversal Kind = "universal"
	KindExpenses  Kind = "expenses"
)

// Profile describes the columns of one supported export layout. Column names
// are matched after normalisation (lower case, no spaces or punctuation).
type Profile struct {
	Kind     Kind
	Required []string
	Optional []string
}

const (
	colDate        = "date"
	colDoorDash    = "doordash"
	colUberEats    = "ubereats"
	colDiDi        = "didi"
	colColes       = "coles"
	colColesHours  = "coleshours"
	colTips        = "tips"
	colSource      = "source"
	colType        = "type"
	colAmount      = "amount"
	colDescription = "description"
)

// headerAliases maps alternative header spellings to canonical column keys.
var headerAliases = map[string]string{
	"day":         colDate,
	"uber":        colUberEats,
	"hours":       colColesHours,
	"tip":         colTips,
	"platform":    colSource,
	"sourcename":  colSource,
	"incometype":  colType,
	"total":       colAmount,
	"name":        colDescription,
	"expense":     colDescription,
	"coleshrs":    colColesHours,
	"colesgross":  colColes,
	"doordashpay": colDoorDash,
}

// profiles is tried in order; more specific layouts come first.
var profiles = []Profile{
	{
		Kind:     KindDaily,
		Required: []string{colDate, colDoorDash, colUberEats, colDiDi, colColes},
		Optional: []string{colTips, colColesHours},
	},
	{
		Kind:     KindUniversal,
		Required: []string{colDate, colSource, colAmount},
		Optional: []string{colType},
	},
	{
		Kind:     KindExpenses,
		Required: []string{colDate, colDescription, colAmount},
	},
}
