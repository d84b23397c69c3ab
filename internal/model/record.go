package model

// Column names of the persons input, in the exact order the header must use.
const (
	ColumnID      = "id"
	ColumnName    = "name"
	ColumnSurname = "surname"
)

// Column names of the visits input that are not shared with persons.
const (
	ColumnPersonID = "person_id"
	ColumnSite     = "site"
)

// PersonFields is the exact header a persons source must expose.
func PersonFields() []string {
	return []string{ColumnID, ColumnName, ColumnSurname}
}

// VisitFields is the exact header a visits source must expose.
func VisitFields() []string {
	return []string{ColumnID, ColumnPersonID, ColumnSite}
}

// PersonRecord is a single row of the persons input.
// Every value is kept as an opaque string.
type PersonRecord struct {
	// ID is the join key referenced by VisitRecord.PersonID.
	ID string `json:"id"`

	// Name is the person's first name.
	Name string `json:"name"`

	// Surname is the person's last name.
	Surname string `json:"surname"`
}

// VisitRecord is a single row of the visits input.
type VisitRecord struct {
	// ID identifies the visit itself. It plays no part in the join.
	ID string `json:"id"`

	// PersonID references PersonRecord.ID by exact string equality.
	PersonID string `json:"person_id"`

	// Site is the visited site. It plays no part in the join.
	Site string `json:"site"`
}

// PersonSummary is the merge output for one person row.
type PersonSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`

	// Visits is the number of visit rows whose person_id equals ID.
	Visits int `json:"visits"`
}

// NewPersonSummary builds a summary for the given person and visit count.
func NewPersonSummary(p PersonRecord, visits int) PersonSummary {
	return PersonSummary{
		ID:      p.ID,
		Name:    p.Name,
		Surname: p.Surname,
		Visits:  visits,
	}
}
