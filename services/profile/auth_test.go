package profile

import (
	"strings"
	"testing"
)

func validRegistration() RegistrationRequest {
	return RegistrationRequest{
		UserType:  "learner",
		FirstName: "Naledi",
		LastName:  "Dlamini",
		Email:     "naledi@example.com",
		Password:  "Sunrise42",
	}
}

func TestValidateRegistrationAcceptsValid(t *testing.T) {
	if err := validateRegistration(validRegistration()); err != nil {
		t.Fatalf("valid registration rejected: %v", err)
	}
}

func TestValidateRegistrationFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegistrationRequest)
	}{
		{"unknown user type", func(r *RegistrationRequest) { r.UserType = "admin" }},
		{"empty first name", func(r *RegistrationRequest) { r.FirstName = "  " }},
		{"empty last name", func(r *RegistrationRequest) { r.LastName = "" }},
		{"overlong first name", func(r *RegistrationRequest) { r.FirstName = strings.Repeat("a", 51) }},
		{"bad email", func(r *RegistrationRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *RegistrationRequest) { r.Password = "Ab1" }},
		{"no uppercase", func(r *RegistrationRequest) { r.Password = "sunrise42" }},
		{"no digit", func(r *RegistrationRequest) { r.Password = "Sunriseee" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistration()
			tc.mutate(&req)
			err := validateRegistration(req)
			if err == nil {
				t.Fatal("expected rejection")
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateRegistrationTutorAllowed(t *testing.T) {
	req := validRegistration()
	req.UserType = "tutor"
	if err := validateRegistration(req); err != nil {
		t.Errorf("tutor registration rejected: %v", err)
	}
}
