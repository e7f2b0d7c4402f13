package quickfill

// ValueSet is a named taxonomy of values, listed in the order they are suggested.
// Aliases map alternative spellings onto a value; HeaderAliases are extra column
// headers that select the set.
type ValueSet struct {
	Name          string            `yaml:"name"`
	Values        []string          `yaml:"values"`
	Aliases       map[string]string `yaml:"aliases,omitempty"`
	HeaderAliases []string          `yaml:"headers,omitempty"`
}

// Catalog is searched in order; earlier sets win ties.
type Catalog []ValueSet

func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name:   "Severity",
			Values: []string{"Critical", "High", "Medium", "Low"},
			Aliases: map[string]string{
				"Urgent":   "Critical",
				"Blocker":  "Critical",
				"Major":    "High",
				"Med":      "Medium",
				"Moderate": "Medium",
				"Minor":    "Low",
				"Trivial":  "Low",
			},
			HeaderAliases: []string{"Sev", "Impact"},
		},
		{
			Name:   "Priority",
			Values: []string{"P0", "P1", "P2", "P3"},
			Aliases: map[string]string{
				"Now":     "P0",
				"Next":    "P1",
				"Later":   "P2",
				"Someday": "P3",
			},
			HeaderAliases: []string{"Pri", "Prio"},
		},
		{
			Name:   "Status",
			Values: []string{"Not Started", "In Progress", "Blocked", "Done"},
			Aliases: map[string]string{
				"Todo":      "Not Started",
				"To Do":     "Not Started",
				"Open":      "Not Started",
				"Doing":     "In Progress",
				"WIP":       "In Progress",
				"Started":   "In Progress",
				"On Hold":   "Blocked",
				"Stuck":     "Blocked",
				"Complete":  "Done",
				"Completed": "Done",
				"Finished":  "Done",
			},
			HeaderAliases: []string{"State"},
		},
		{
			Name:   "Resolution",
			Values: []string{"Fixed", "Won't Fix", "Duplicate", "Cannot Reproduce", "Works as Intended"},
			Aliases: map[string]string{
				"Wontfix":         "Won't Fix",
				"Wont Fix":        "Won't Fix",
				"Dup":             "Duplicate",
				"Dupe":            "Duplicate",
				"Can't Reproduce": "Cannot Reproduce",
				"CNR":             "Cannot Reproduce",
				"By Design":       "Works as Intended",
				"WAI":             "Works as Intended",
			},
		},
		{
			Name:   "Yes/No",
			Values: []string{"Yes", "No"},
			Aliases: map[string]string{
				"Y":     "Yes",
				"N":     "No",
				"True":  "Yes",
				"False": "No",
			},
		},
		{
			Name:   "Enabled/Disabled",
			Values: []string{"Enabled", "Disabled"},
			Aliases: map[string]string{
				"On":      "Enabled",
				"Off":     "Disabled",
				"Enable":  "Enabled",
				"Disable": "Disabled",
			},
		},
		{
			Name:   "Size",
			Values: []string{"XS", "S", "M", "L", "XL"},
			Aliases: map[string]string{
				"Extra Small": "XS",
				"Small":       "S",
				"Medium":      "M",
				"Large":       "L",
				"Extra Large": "XL",
			},
			HeaderAliases: []string{"T-Shirt", "Estimate"},
		},
	}
}
