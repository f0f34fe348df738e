package domain

import "sort"

// DepartmentMembers is one department of a roster snapshot, members sorted.
type DepartmentMembers struct {
	Department string   `json:"department" yaml:"department"`
	Members    []string `json:"members" yaml:"members"`
}

// Roster groups member names by department, keeping insertion order per department.
// Departments are created by their first member and never removed.
//
// A Roster is owned by a single goroutine; it does no locking.
type Roster struct {
	departments map[string][]string
}

func NewRoster() *Roster {
	return &Roster{departments: map[string][]string{}}
}

// Add appends the request's name to its department, creating the department if needed.
// Names are not deduplicated.
func (r *Roster) Add(req AddRequest) {
	if r.departments == nil {
		r.departments = map[string][]string{}
	}
	r.departments[req.department] = append(r.departments[req.department], req.name)
}

// MembersOf returns a sorted copy of a department's members.
// An unknown department yields an empty slice.
func (r *Roster) MembersOf(department string) []string {
	return sortedCopy(r.departments[department])
}

// AllMembersByDepartment returns every department sorted by name, each with sorted members.
func (r *Roster) AllMembersByDepartment() []DepartmentMembers {
	names := r.Departments()
	out := make([]DepartmentMembers, 0, len(names))
	for _, name := range names {
		out = append(out, DepartmentMembers{
			Department: name,
			Members:    sortedCopy(r.departments[name]),
		})
	}
	return out
}

// Departments returns the department names in ascending order.
func (r *Roster) Departments() []string {
	names := make([]string, 0, len(r.departments))
	for name := range r.departments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len is the number of departments.
func (r *Roster) Len() int {
	return len(r.departments)
}

// Headcount is the number of member entries across all departments, duplicates included.
func (r *Roster) Headcount() int {
	n := 0
	for _, members := range r.departments {
		n += len(members)
	}
	return n
}

// sortedCopy orders by byte value, which for UTF-8 is code point order.
func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
