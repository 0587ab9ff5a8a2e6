package service

import (
	"testing"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"
)

func newDoctorService() (*DoctorService, *mockDoctorStore, *mockHospitalStore) {
	doctors := newMockDoctorStore()
	hospitals := newMockHospitalStore()
	svc := NewDoctorService(doctors, hospitals, &mockAuditLogger{})
	return svc, doctors, hospitals
}

func TestCreateDoctorRequiresExistingHospital(t *testing.T) {
	svc, doctors, hospitals := newDoctorService()

	_, err := svc.CreateDoctor(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology", HospitalID: 5}, 1)
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected NotFound for missing hospital, got %v", err)
	}
	if len(doctors.doctors) != 0 {
		t.Error("no doctor should be persisted without its hospital")
	}

	hospital := &models.Hospital{Name: "General", Location: "x"}
	_ = hospitals.CreateHospital(hospital)

	saved, err := svc.CreateDoctor(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology", HospitalID: hospital.ID}, 1)
	if err != nil {
		t.Fatalf("CreateDoctor: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected an assigned ID")
	}
}

func TestUpdateDoctorValidatesRehoming(t *testing.T) {
	svc, _, hospitals := newDoctorService()

	first := &models.Hospital{Name: "North", Location: "n"}
	_ = hospitals.CreateHospital(first)
	saved, _ := svc.CreateDoctor(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology", HospitalID: first.ID}, 1)

	// Moving to a hospital that does not exist is rejected
	_, err := svc.UpdateDoctor(saved.ID, &models.Doctor{Name: "Dr. A", Specialization: "Cardiology", HospitalID: 99}, 1)
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected NotFound for unknown target hospital, got %v", err)
	}

	second := &models.Hospital{Name: "South", Location: "s"}
	_ = hospitals.CreateHospital(second)

	updated, err := svc.UpdateDoctor(saved.ID, &models.Doctor{Name: "Dr. B", Specialization: "Neurology", HospitalID: second.ID}, 1)
	if err != nil {
		t.Fatalf("UpdateDoctor: %v", err)
	}
	if updated.Name != "Dr. B" || updated.Specialization != "Neurology" || updated.HospitalID != second.ID {
		t.Errorf("doctor not fully updated: %+v", updated)
	}
}

func TestUpdateDoctorKeepsHospitalWhenOmitted(t *testing.T) {
	svc, _, hospitals := newDoctorService()

	hospital := &models.Hospital{Name: "General", Location: "x"}
	_ = hospitals.CreateHospital(hospital)
	saved, _ := svc.CreateDoctor(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology", HospitalID: hospital.ID}, 1)

	updated, err := svc.UpdateDoctor(saved.ID, &models.Doctor{Name: "Dr. A", Specialization: "Radiology"}, 1)
	if err != nil {
		t.Fatalf("UpdateDoctor: %v", err)
	}
	if updated.HospitalID != hospital.ID {
		t.Errorf("hospital should be unchanged, got %d", updated.HospitalID)
	}
}

func TestDeleteDoctor(t *testing.T) {
	svc, doctors, hospitals := newDoctorService()

	hospital := &models.Hospital{Name: "General", Location: "x"}
	_ = hospitals.CreateHospital(hospital)
	saved, _ := svc.CreateDoctor(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology", HospitalID: hospital.ID}, 1)

	if err := svc.DeleteDoctor(saved.ID, 1); err != nil {
		t.Fatalf("DeleteDoctor: %v", err)
	}
	if len(doctors.doctors) != 0 {
		t.Error("doctor should be gone")
	}
	if err := svc.DeleteDoctor(saved.ID, 1); !apperror.IsNotFound(err) {
		t.Errorf("second delete should be NotFound, got %v", err)
	}
}

func TestGetDoctorsByHospitalChecksHospital(t *testing.T) {
	svc, _, hospitals := newDoctorService()

	if _, err := svc.GetDoctorsByHospital(42); !apperror.IsNotFound(err) {
		t.Fatalf("expected NotFound for unknown hospital, got %v", err)
	}

	hospital := &models.Hospital{Name: "General", Location: "x"}
	_ = hospitals.CreateHospital(hospital)
	_, _ = svc.CreateDoctor(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology", HospitalID: hospital.ID}, 1)
	_, _ = svc.CreateDoctor(&models.Doctor{Name: "Dr. B", Specialization: "Neurology", HospitalID: hospital.ID}, 1)

	list, err := svc.GetDoctorsByHospital(hospital.ID)
	if err != nil {
		t.Fatalf("GetDoctorsByHospital: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 doctors, got %d", len(list))
	}
}
