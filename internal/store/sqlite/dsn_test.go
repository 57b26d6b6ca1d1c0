package sqlite

import "testing"

func TestParseDSN(t *testing.T) {
	cases := []struct {
		dsn  string
		want string
	}{
		{"sqlite://:memory:", ":memory:"},
		{"sqlite:///var/data/quests.db", "/var/data/quests.db"},
		{"sqlite://quests.db", "./quests.db"},
		{"sqlite://./quests.db", "./quests.db"},
		{"sqlite://quests.db?mode=ro", "./quests.db?mode=ro"},
		{"sqlite://my%20quests.db", "./my quests.db"},
	}
	for _, tc := range cases {
		got, err := parseDSN(tc.dsn)
		if err != nil {
			t.Fatalf("%s: %v", tc.dsn, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.dsn, got, tc.want)
		}
	}

	for _, dsn := range []string{"postgres://x", "quests.db", "sqlite://"} {
		if _, err := parseDSN(dsn); err == nil {
			t.Fatalf("%s: expected error", dsn)
		}
	}
}
