package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Test Service", "test-service"},
		{"punctuation", " Foo,  Bar! ", "foo-bar"},
		{"chinese preserved", "传统泰式按摩", "传统泰式按摩"},
		{"korean preserved", "전통 타이 마사지", "전통-타이-마사지"},
		{"mixed", "Thai 按摩 Deluxe", "thai-按摩-deluxe"},
		{"collapses runs", "a --- b", "a-b"},
		{"only punctuation", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+66812345678", true},
		{"+66 81 234 5678", true},
		{"081-234-5678", true},
		{"12345", false},      // too short
		{"abc1234567", false}, // letters
		{"+661234567890123456", false}, // too long
	}
	for _, tt := range tests {
		if got := ValidatePhone(tt.phone); got != tt.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestValidateTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "14:05", "23:59"}
	invalid := []string{"24:00", "9:30", "14:60", "14.30", ""}

	for _, v := range valid {
		if !ValidateTime(v) {
			t.Errorf("ValidateTime(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if ValidateTime(v) {
			t.Errorf("ValidateTime(%q) = true, want false", v)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"thai-massage", "a", "spa-2024"}
	invalid := []string{"Thai-Massage", "-thai", "thai-", "thai--massage", "thai massage", ""}

	for _, v := range valid {
		if !ValidateSlug(v) {
			t.Errorf("ValidateSlug(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if ValidateSlug(v) {
			t.Errorf("ValidateSlug(%q) = true, want false", v)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2030-01-02"); err != nil {
		t.Errorf("ParseDate valid date: %v", err)
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("ParseDate accepted garbage")
	}
	if _, err := ParseDate("2030-13-40"); err == nil {
		t.Error("ParseDate accepted impossible date")
	}
}
