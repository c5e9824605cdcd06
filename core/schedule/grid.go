package schedule

// Cell kinds; a cell without slot is empty.
const (
	KindLesson    = string(TypeLesson)
	KindBreak     = string(TypeBreak)
	KindAvailable = string(TypeAvailable)
	KindEmpty     = "empty"
)

type (
	Cell struct {
		Day   string `json:"day"`
		Time  string `json:"time"`
		Kind  string `json:"kind"`
		Label string `json:"label,omitempty"` // student's name for lessons
		Slot  *Slot  `json:"slot"`
	}

	Row struct {
		Time  string `json:"time"`
		Cells []Cell `json:"cells"`
	}

	// Grid is the weekly view: one row per hour, one column per day.
	Grid struct {
		Days []string `json:"days"`
		Rows []Row    `json:"rows"`
	}
)

// BuildGrid lays `slots` out on a 7x24 grid.
func BuildGrid(slots []Slot) Grid {
	g := Grid{Days: Days, Rows: make([]Row, 0, len(Times))}
	for _, t := range Times {
		row := Row{Time: t, Cells: make([]Cell, 0, len(Days))}
		for _, d := range Days {
			row.Cells = append(row.Cells, newCell(slots, d, t))
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

func newCell(slots []Slot, day, time string) Cell {
	c := Cell{Day: day, Time: time, Kind: KindEmpty}
	s, ok := Lookup(slots, day, time)
	if !ok {
		return c
	}
	c.Slot = &s
	switch s.Type {
	case TypeLesson:
		c.Kind = KindLesson
		c.Label = s.StudentName.String
	case TypeBreak:
		c.Kind = KindBreak
	case TypeAvailable:
		c.Kind = KindAvailable
	}
	return c
}

// Cell returns the cell of `day` at `time`, if on the grid.
func (g Grid) Cell(day, time string) (Cell, bool) {
	for _, row := range g.Rows {
		if row.Time != time {
			continue
		}
		for _, c := range row.Cells {
			if c.Day == day {
				return c, true
			}
		}
	}
	return Cell{}, false
}
