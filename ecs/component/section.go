package component

// Section is one page of the portfolio deck (about, projects, skills,
// contact). Exactly one section is active at a time.
type Section struct {
	ID     string
	Title  string
	Index  int
	Active bool
	// Body lines rendered under the heading.
	Body []string
	// Email shown in the contact section.
	Email string
}

var SectionComponent = NewComponent[Section]()
