package parser

// Points totals in the WA tables run from 1 to 1400.
const (
	MinPoints = 1
	MaxPoints = 1400
)

// Event identifies one race discipline column in the tabulated scoring
// tables. Key is the stable identifier used in the generated output, Label is
// what the web page displays, and Headers lists every spelling of the column
// heading seen across table sections (the export is not consistent about
// spacing and thousand separators).
type Event struct {
	Key     string
	Label   string
	Headers []string
}

// Events is the fixed event set, in the order the generated tables are
// emitted. Sections that lack a column for an event simply contribute no
// entries for it.
var Events = []Event{
	{Key: "100m", Label: "100m", Headers: []string{"100m", "100 m"}},
	{Key: "200m", Label: "200m", Headers: []string{"200m", "200 m"}},
	{Key: "400m", Label: "400m", Headers: []string{"400m", "400 m"}},
	{Key: "800m", Label: "800m", Headers: []string{"800m", "800 m"}},
	{Key: "1500m", Label: "1500m", Headers: []string{"1500m", "1500 m"}},
	{Key: "mile", Label: "Mile", Headers: []string{"Mile", "1 Mile"}},
	{Key: "3000m", Label: "3000m", Headers: []string{"3000m", "3000 m"}},
	{Key: "5000m", Label: "5000m", Headers: []string{"5000m", "5,000m"}},
	{Key: "10000m", Label: "10,000m", Headers: []string{"10000m", "10,000m"}},
	{Key: "5km", Label: "5 km", Headers: []string{"5 km", "5km", "5K"}},
	{Key: "10km", Label: "10 km", Headers: []string{"10 km", "10km", "10K"}},
	{Key: "half", Label: "Half Marathon", Headers: []string{"HM", "Half Marathon", "1/2 Marathon"}},
	{Key: "marathon", Label: "Marathon", Headers: []string{"Marathon"}},
}

// EventByKey returns the declared event for a key, or false when the key is
// not part of the fixed set.
func EventByKey(key string) (Event, bool) {
	for _, ev := range Events {
		if ev.Key == key {
			return ev, true
		}
	}
	return Event{}, false
}

// SparseTables holds the directly observed data: event key -> points total ->
// raw time string as it appeared in the cell. Gaps are expected; the scoring
// package densifies them later.
type SparseTables map[string]map[int]string

// ParsedTables is the result of reading one export file.
type ParsedTables struct {
	Tables      SparseTables
	IgnoredRows int      // data-shaped rows dropped before any header or with a bad points cell
	Warnings    []string // non-fatal problems (e.g. unreadable xlsx sheets)
}

func NewParsedTables() *ParsedTables {
	return &ParsedTables{
		Tables:   make(SparseTables),
		Warnings: make([]string, 0),
	}
}
