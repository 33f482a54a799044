package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "john.d+1@saps.gov.za", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidAONumber(t *testing.T) {
	valid := []string{"AO001234", "AO999999"}
	invalid := []string{"AO1234", "ao001234", "AO0012345", "PC001234", "A0001234", ""}
	for _, ao := range valid {
		if !IsValidAONumber(ao) {
			t.Errorf("IsValidAONumber(%q) = false, want true", ao)
		}
	}
	for _, ao := range invalid {
		if IsValidAONumber(ao) {
			t.Errorf("IsValidAONumber(%q) = true, want false", ao)
		}
	}
}

func TestIsValidPCNumber(t *testing.T) {
	valid := []string{"PC567890", "PC000001"}
	invalid := []string{"PC56789", "pc567890", "AO567890", "PC5678901", ""}
	for _, pc := range valid {
		if !IsValidPCNumber(pc) {
			t.Errorf("IsValidPCNumber(%q) = false, want true", pc)
		}
	}
	for _, pc := range invalid {
		if IsValidPCNumber(pc) {
			t.Errorf("IsValidPCNumber(%q) = true, want false", pc)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"0821234567", "082 123 4567", "+27821234567", "082-123-4567"}
	invalid := []string{"82123456", "08212345678", "+2782123456", "abcdefghij", ""}
	for _, p := range valid {
		if !IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", p)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-06-03"); !ok {
		t.Error("IsValidDate(2024-06-03) = false, want true")
	}
	for _, bad := range []string{"2024-13-01", "03-06-2024", "2024/06/03", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "ao_number", Message: "ao_number is required"},
		{Field: "rank", Message: "rank is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["rank"] != "rank is required" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() == "" {
		t.Error("Error() should join field messages")
	}
}
