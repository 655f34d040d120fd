package schema

import "testing"

func TestColumnName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"ID", "id"},
		{"Name", "name"},
		{"CreatedAt", "created_at"},
		{"UserID", "user_id"},
		{"Název", "nazev"},
		{"Příjmení", "prijmeni"},
		{" ", "col"},
		{"", "col"},
	}
	for _, c := range cases {
		if got := ColumnName(c.in); got != c.want {
			t.Errorf("ColumnName(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}
