package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooleanise(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"yes", "Yes"},
		{"no", "No"},
		{"partial", "Partially"},
		{"Yes", "Yes"},
		{"limited", "limited"},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Booleanise(tc.in))
		})
	}
}

func TestAccessLabel(t *testing.T) {
	cases := []struct {
		name    string
		access  string
		private string
		want    string
		wantOK  bool
	}{
		{"private students", "private", "students", "Students only", true},
		{"private employees", "private", "employees", "Employees only", true},
		{"customers", "customers", "", "Customers only", true},
		{"members", "members", "", "Members only", true},
		{"private alone", "private", "", "Private", true},
		{"unknown private value falls back", "private", "staff", "Private", true},
		{"private refines any restricted access", "customers", "students", "Students only", true},
		{"no access", "", "", "", false},
		{"public access", "yes", "", "", false},
		{"private tag alone is ignored", "", "students", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AccessLabel(tc.access, tc.private)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsHangarOperator(t *testing.T) {
	cases := []struct {
		operator string
		want     bool
	}{
		{"Falco", true},
		{"Cyclehoop", true},
		{"falco", false},
		{"Cyclehoop Ltd", false},
		{"Sheffield City Council", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.operator, func(t *testing.T) {
			assert.Equal(t, tc.want, IsHangarOperator(tc.operator))
		})
	}
}

func TestImpliesCovered(t *testing.T) {
	cases := []struct {
		kind string
		want bool
	}{
		{"shed", true},
		{"building", true},
		{"stands", false},
		{"wall_loops", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			assert.Equal(t, tc.want, ImpliesCovered(tc.kind))
		})
	}
}
