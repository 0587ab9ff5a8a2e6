package service

import (
	"testing"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"
)

type authFixture struct {
	svc       *AuthService
	users     *mockUserStore
	doctors   *mockDoctorStore
	hospitals *mockHospitalStore
}

func newAuthFixture() *authFixture {
	users := newMockUserStore()
	doctors := newMockDoctorStore()
	hospitals := newMockHospitalStore()
	svc := NewAuthService(users, doctors, hospitals, &mockAuditLogger{})
	return &authFixture{svc: svc, users: users, doctors: doctors, hospitals: hospitals}
}

func TestRegisterDefaultsToPatient(t *testing.T) {
	f := newAuthFixture()

	resp, err := f.svc.Register(RegisterInput{Name: "John Smith", Email: "john@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.User.Role != models.RolePatient {
		t.Errorf("role = %q, want PATIENT", resp.User.Role)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("registration should issue both tokens")
	}

	stored, err := f.users.FindUserByEmail("john@example.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.PasswordHash == "secret123" {
		t.Error("password must be stored hashed")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Register(RegisterInput{Name: "X", Email: "x@example.com", Password: "pw", Role: "SUPERUSER"})
	if !apperror.IsInvalidInput(err) {
		t.Errorf("expected InvalidInput, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.svc.Register(RegisterInput{Name: "First", Email: "dup@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err := f.svc.Register(RegisterInput{Name: "Second", Email: "dup@example.com", Password: "pw"})
	if !apperror.IsConflict(err) {
		t.Fatalf("expected Conflict for duplicate email, got %v", err)
	}
}

func TestRegisterDoctorRequiresProfileFields(t *testing.T) {
	f := newAuthFixture()
	_ = f.hospitals.CreateHospital(&models.Hospital{Name: "General", Location: "x"})

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"missing specialization", RegisterInput{Name: "Dr. A", Email: "a@example.com", Password: "pw", Role: models.RoleDoctor, HospitalID: 1}},
		{"missing hospital", RegisterInput{Name: "Dr. B", Email: "b@example.com", Password: "pw", Role: models.RoleDoctor, Specialization: "Cardiology"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Register(tc.input)
			if !apperror.IsInvalidInput(err) {
				t.Errorf("expected InvalidInput, got %v", err)
			}
		})
	}
	if len(f.users.users) != 0 {
		t.Error("no user should be created when the doctor profile is incomplete")
	}
}

func TestRegisterDoctorUnknownHospital(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Register(RegisterInput{
		Name: "Dr. C", Email: "c@example.com", Password: "pw",
		Role: models.RoleDoctor, Specialization: "Oncology", HospitalID: 77,
	})
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if len(f.users.users) != 0 || len(f.doctors.doctors) != 0 {
		t.Error("nothing should be persisted when the hospital does not exist")
	}
}

func TestRegisterDoctorCreatesDoctorProfile(t *testing.T) {
	f := newAuthFixture()
	hospital := &models.Hospital{Name: "General", Location: "x"}
	_ = f.hospitals.CreateHospital(hospital)

	resp, err := f.svc.Register(RegisterInput{
		Name: "Dr. House", Email: "house@example.com", Password: "pw",
		Role: models.RoleDoctor, Specialization: "Diagnostics", HospitalID: hospital.ID,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.User.Role != models.RoleDoctor {
		t.Errorf("role = %q, want DOCTOR", resp.User.Role)
	}

	doctors, _ := f.doctors.GetDoctorsByHospitalID(hospital.ID)
	if len(doctors) != 1 {
		t.Fatalf("expected one doctor profile, got %d", len(doctors))
	}
	if doctors[0].Name != "Dr. House" || doctors[0].Specialization != "Diagnostics" {
		t.Errorf("doctor profile = %+v", doctors[0])
	}
}

func TestLogin(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.svc.Register(RegisterInput{Name: "John", Email: "john@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := f.svc.Login("john@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("login should issue both tokens")
	}
	if resp.User.Email != "john@example.com" {
		t.Errorf("user email = %q", resp.User.Email)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.svc.Register(RegisterInput{Name: "John", Email: "john@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := f.svc.Login("john@example.com", "wrong"); err == nil || err.Error() != "invalid credentials" {
		t.Errorf("wrong password: got %v", err)
	}
	// An unknown email yields the same opaque error
	if _, err := f.svc.Login("nobody@example.com", "secret123"); err == nil || err.Error() != "invalid credentials" {
		t.Errorf("unknown email: got %v", err)
	}
}

func TestRefreshAndLogoutLifecycle(t *testing.T) {
	f := newAuthFixture()
	resp, err := f.svc.Register(RegisterInput{Name: "John", Email: "john@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	accessToken, err := f.svc.RefreshAccessToken(resp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshAccessToken: %v", err)
	}
	if accessToken == "" {
		t.Error("expected a fresh access token")
	}

	if err := f.svc.Logout(resp.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := f.svc.RefreshAccessToken(resp.RefreshToken); err == nil {
		t.Error("a revoked refresh token must not mint access tokens")
	}
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.svc.RefreshAccessToken("not-a-real-token"); err == nil {
		t.Error("expected an error for an unknown refresh token")
	}
}
