package domain

import "testing"

func TestPasswordSetAndMatches(t *testing.T) {
	var user User

	err := user.Password.Set("Pass123!@#")
	if err != nil {
		t.Fatal(err)
	}

	if len(user.Password.Hash) == 0 {
		t.Fatal("hash not set")
	}

	if string(user.Password.Hash) == "Pass123!@#" {
		t.Fatal("password stored in clear text")
	}

	matches, err := user.Password.Matches("Pass123!@#")
	if err != nil {
		t.Fatal(err)
	}
	if !matches {
		t.Error("correct password did not match")
	}

	matches, err = user.Password.Matches("Wrong123!@#")
	if err != nil {
		t.Fatal(err)
	}
	if matches {
		t.Error("wrong password matched")
	}
}

func TestProfileUpdateDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		update   ProfileUpdate
		previous string
		want     string
	}{
		{
			name:     "first and last name",
			update:   ProfileUpdate{FirstName: "Alice", LastName: "Smith"},
			previous: "Al",
			want:     "Alice Smith",
		},
		{
			name:     "first name only",
			update:   ProfileUpdate{FirstName: "Alice"},
			previous: "Al",
			want:     "Alice",
		},
		{
			name:     "both blank keeps previous name",
			update:   ProfileUpdate{},
			previous: "Al",
			want:     "Al",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.update.DisplayName(tt.previous); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
